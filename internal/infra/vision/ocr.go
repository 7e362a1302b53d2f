package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"gravity/config"
	"gravity/internal/domain/entity"
	"gravity/internal/domain/service"
	"gravity/internal/errors"
)

// ocrClient calls the text-recognition inference endpoint.
type ocrClient struct {
	endpoint string
	session  *session
}

// NewTextRecognizer builds the OCR client from configuration.
func NewTextRecognizer(cfg *config.Config) service.TextRecognizer {
	endpoint := ""
	if cfg.Vision != nil {
		endpoint = cfg.Vision.OCREndpoint
	}

	return &ocrClient{
		endpoint: endpoint,
		session:  getSession(visionTimeout(cfg)),
	}
}

type recognizeRequest struct {
	Image string `json:"image"` // base64 encoded
}

type recognizeResponse struct {
	Text string `json:"text"`
}

// Recognize extracts raw text from a stats screenshot.
func (c *ocrClient) Recognize(ctx context.Context, image []byte) (string, error) {
	payload, err := json.Marshal(recognizeRequest{
		Image: base64.StdEncoding.EncodeToString(image),
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/recognize", bytes.NewReader(payload))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.session.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "ocr request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("ocr error: status %d", resp.StatusCode)
	}

	var result recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "failed to decode ocr response")
	}

	return result.Text, nil
}

// ExtractHints recognizes the screenshot and pattern-matches the text
// for pre-fill suggestions.
func (c *ocrClient) ExtractHints(ctx context.Context, image []byte) (entity.AutofillHints, error) {
	text, err := c.Recognize(ctx, image)
	if err != nil {
		return entity.AutofillHints{}, err
	}

	return ExtractHints(text), nil
}

// Heart-rate tokens: "140 bpm", "140bpm", "hr 140", "heart rate 140".
var (
	bpmBeforeRe = regexp.MustCompile(`(\d{2,3})\s?(?:bpm|hr|heart)`)
	bpmAfterRe  = regexp.MustCompile(`(?:bpm|hr|heart)[^\d]{0,6}(\d{2,3})`)
	timeRe      = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
)

// ExtractHints pattern-matches recognized text for a heart-rate token
// and an MM:SS-shaped duration token. Unmatched fields stay nil; the
// caller treats everything here as a pre-fill suggestion only.
func ExtractHints(text string) entity.AutofillHints {
	lower := strings.ToLower(text)
	hints := entity.AutofillHints{}

	if m := bpmBeforeRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			hints.HeartRate = &v
		}
	} else if m := bpmAfterRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			hints.HeartRate = &v
		}
	}

	if m := timeRe.FindStringSubmatch(lower); m != nil {
		// MM:SS or HH:MM, and either way the leading component is the
		// minutes hint the original surfaced.
		if v, err := strconv.Atoi(m[1]); err == nil {
			hints.Minutes = &v
		}
	}

	return hints
}

package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"gravity/config"
	"gravity/internal/domain/service"
	"gravity/internal/errors"
)

// faceClient calls the face-descriptor inference endpoint.
type faceClient struct {
	endpoint  string
	threshold float64
	session   *session
}

// NewFaceMatcher builds the biometric matcher from configuration.
func NewFaceMatcher(cfg *config.Config) service.FaceMatcher {
	threshold := DefaultMatchThreshold
	endpoint := ""
	if cfg.Vision != nil {
		endpoint = cfg.Vision.FaceEndpoint
		if cfg.Vision.MatchThreshold > 0 {
			threshold = cfg.Vision.MatchThreshold
		}
	}

	return &faceClient{
		endpoint:  endpoint,
		threshold: threshold,
		session:   getSession(visionTimeout(cfg)),
	}
}

// compareRequest asks the sidecar to detect a single face in each image
// and return the descriptor distance.
type compareRequest struct {
	ReferenceURL  string `json:"reference_url"`
	EvidenceImage string `json:"evidence_image"` // base64 encoded
}

type compareResponse struct {
	ReferenceFaces int     `json:"reference_faces"`
	EvidenceFaces  int     `json:"evidence_faces"`
	Distance       float64 `json:"distance"`
}

// Match compares the locked reference photo with the submitted evidence
// image. Distance below the threshold counts as the same person.
func (c *faceClient) Match(ctx context.Context, referenceURL string, evidence []byte) (*service.FaceMatch, error) {
	payload, err := json.Marshal(compareRequest{
		ReferenceURL:  referenceURL,
		EvidenceImage: base64.StdEncoding.EncodeToString(evidence),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/compare", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.session.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "face inference request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("face inference error: status %d", resp.StatusCode)
	}

	var result compareResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "failed to decode face inference response")
	}

	switch {
	case result.ReferenceFaces == 0:
		return nil, service.ErrNoFaceInReference
	case result.EvidenceFaces == 0:
		return nil, service.ErrNoFaceInEvidence
	case result.Distance >= c.threshold:
		return &service.FaceMatch{Match: false, Distance: result.Distance}, service.ErrFaceMismatch
	}

	return &service.FaceMatch{Match: true, Distance: result.Distance}, nil
}

package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"rttsite/config"
)

// ExistingApplication is returned by CreateJobApplication when the ATS
// reports the candidate has already applied to the job. The duplicate is
// treated as a success so that resubmitting an application stays idempotent
// from the applicant's point of view.
const ExistingApplication = "existing"

// CandidateData holds the applicant attributes sent to the ATS.
type CandidateData struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	ResumeURL string
}

// TeamtailorService wraps the external ATS REST API. It isolates the
// JSON:API wire format, the pinned API version header and token auth from
// the rest of the application. Calls are single-attempt with no retries.
type TeamtailorService struct {
	apiURL      string
	apiKey      string
	jobIDFrench string
	jobIDDutch  string
	client      *http.Client
}

func NewTeamtailorService(cfg config.TeamtailorConfig) *TeamtailorService {
	return &TeamtailorService{
		apiURL:      strings.TrimRight(cfg.APIURL, "/"),
		apiKey:      cfg.APIKey,
		jobIDFrench: cfg.JobIDFrench,
		jobIDDutch:  cfg.JobIDDutch,
		client:      &http.Client{},
	}
}

func (s *TeamtailorService) post(path string, payload interface{}) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.apiURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Token token=%s", s.apiKey))
	req.Header.Set("X-Api-Version", "20180828")
	req.Header.Set("Content-Type", "application/vnd.api+json")

	return s.client.Do(req)
}

type resourceResponse struct {
	Data struct {
		ID         string `json:"id"`
		Attributes struct {
			URL string `json:"url"`
		} `json:"attributes"`
	} `json:"data"`
}

// CreateCandidate creates (or merges, by email) a candidate in the ATS and
// returns its identifier.
func (s *TeamtailorService) CreateCandidate(data CandidateData) (string, error) {
	attributes := map[string]interface{}{
		"first-name": data.FirstName,
		"last-name":  data.LastName,
		"email":      data.Email,
		"phone":      data.Phone,
		// Merge with an existing candidate if the email matches, so a
		// resubmission updates the record instead of duplicating it.
		"merge": true,
	}
	if data.ResumeURL != "" {
		attributes["resume"] = data.ResumeURL
	}

	resp, err := s.post("/v1/candidates", map[string]interface{}{
		"data": map[string]interface{}{
			"type":       "candidates",
			"attributes": attributes,
		},
	})
	if err != nil {
		return "", fmt.Errorf("candidate request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorText, _ := io.ReadAll(resp.Body)
		log.Printf("Teamtailor candidate creation error: %s", string(errorText))
		return "", fmt.Errorf("failed to create candidate: status %d", resp.StatusCode)
	}

	var parsed resourceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode candidate response: %v", err)
	}
	return parsed.Data.ID, nil
}

// CreateJobApplication links a candidate to a job. A 422 response carrying
// the known "already applied" message is not an error; the sentinel
// ExistingApplication is returned instead.
func (s *TeamtailorService) CreateJobApplication(candidateID, jobID string) (string, error) {
	resp, err := s.post("/v1/job-applications", map[string]interface{}{
		"data": map[string]interface{}{
			"type": "job-applications",
			"relationships": map[string]interface{}{
				"candidate": map[string]interface{}{
					"data": map[string]interface{}{"type": "candidates", "id": candidateID},
				},
				"job": map[string]interface{}{
					"data": map[string]interface{}{"type": "jobs", "id": jobID},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("job application request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorText, _ := io.ReadAll(resp.Body)

		if resp.StatusCode == http.StatusUnprocessableEntity && strings.Contains(string(errorText), "already applied") {
			log.Printf("Candidate %s has already applied to job %s - treating as success", candidateID, jobID)
			return ExistingApplication, nil
		}

		log.Printf("Teamtailor job application error: %s", string(errorText))
		return "", fmt.Errorf("failed to create job application: status %d", resp.StatusCode)
	}

	var parsed resourceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode job application response: %v", err)
	}
	return parsed.Data.ID, nil
}

// UploadFile pushes file content to the ATS upload store and returns the URL
// to reference from a candidate's resume attribute.
func (s *TeamtailorService) UploadFile(content []byte, filename, mimeType string) (string, error) {
	resp, err := s.post("/v1/uploads", map[string]interface{}{
		"data": map[string]interface{}{
			"type": "uploads",
			"attributes": map[string]interface{}{
				"file-name": filename,
				"file-type": mimeType,
				"content":   base64.StdEncoding.EncodeToString(content),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorText, _ := io.ReadAll(resp.Body)
		log.Printf("Teamtailor upload error: %s", string(errorText))
		return "", fmt.Errorf("failed to upload file: status %d", resp.StatusCode)
	}

	var parsed resourceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %v", err)
	}
	return parsed.Data.Attributes.URL, nil
}

// GetJobIDByLanguage maps an applicant language to the job posting it
// applies to. Pure lookup, no network call.
func (s *TeamtailorService) GetJobIDByLanguage(language string) string {
	if language == "fr" {
		return s.jobIDFrench
	}
	return s.jobIDDutch
}

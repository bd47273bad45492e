package esearch

import (
	"time"

	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
	"github.com/aalug/go-gin-job-board/internal/service"
)

const jobsIndex = "jobs"

// JobDocument is the searchable form of a job. Referenced records are
// flattened into it so a search needs no joins.
type JobDocument struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	CompanyID      string       `json:"company_id"`
	CompanyName    string       `json:"company_name"`
	Description    string       `json:"description"`
	EmploymentType db.JobType   `json:"employment_type"`
	Status         db.JobStatus `json:"status"`
	City           string       `json:"city"`
	Category       string       `json:"category"`
	SalaryMin      *float64     `json:"salary_min,omitempty"`
	SalaryMax      *float64     `json:"salary_max,omitempty"`
	Tags           []string     `json:"tags,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

// NewJobDocument builds the document of a resolved job. Missing references
// leave their fields empty.
func NewJobDocument(job service.JobDetails) JobDocument {
	doc := JobDocument{
		ID:             job.ID,
		Title:          job.Title,
		CompanyID:      job.CompanyID,
		Description:    job.Description,
		EmploymentType: job.EmploymentType,
		Status:         job.Status,
		SalaryMin:      job.SalaryMin,
		SalaryMax:      job.SalaryMax,
		Tags:           job.Tags,
		CreatedAt:      job.CreatedAt,
	}
	if job.Company != nil {
		doc.CompanyName = job.Company.Name
	}
	if job.Location != nil {
		doc.City = job.Location.City
	}
	if job.Category != nil {
		doc.Category = job.Category.Name
	}
	return doc
}

// === Queries and Searches ===

type SearchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []*struct {
			Source *JobDocument `json:"_source"`
			ID     string       `json:"_id"`
		} `json:"hits"`
	} `json:"hits"`
}

package db

import (
	"time"
)

type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
	JobTypeFreelance  JobType = "FREELANCE"
)

// Valid reports whether t is one of the known job types
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeFreelance:
		return true
	}
	return false
}

type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"
	JobStatusDraft  JobStatus = "DRAFT"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusClosed, JobStatusDraft:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationStatusPending      ApplicationStatus = "PENDING"
	ApplicationStatusInterviewing ApplicationStatus = "INTERVIEWING"
	ApplicationStatusOffered      ApplicationStatus = "OFFERED"
	ApplicationStatusRejected     ApplicationStatus = "REJECTED"
	ApplicationStatusCancelled    ApplicationStatus = "CANCELLED"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusInterviewing, ApplicationStatusOffered,
		ApplicationStatusRejected, ApplicationStatusCancelled:
		return true
	}
	return false
}

type MessageStatus string

const (
	MessageStatusSent      MessageStatus = "SENT"
	MessageStatusDelivered MessageStatus = "DELIVERED"
	MessageStatusRead      MessageStatus = "READ"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
	UserStatusBanned   UserStatus = "BANNED"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusBanned:
		return true
	}
	return false
}

type Job struct {
	ID             string     `bson:"_id" json:"id"`
	Title          string     `bson:"title" json:"title"`
	CompanyID      string     `bson:"company_id" json:"company_id"`
	Description    string     `bson:"description" json:"description"`
	EmploymentType JobType    `bson:"employment_type" json:"employment_type"`
	MinExperience  *int       `bson:"min_experience,omitempty" json:"min_experience,omitempty"`
	SalaryMin      *float64   `bson:"salary_min,omitempty" json:"salary_min,omitempty"`
	SalaryMax      *float64   `bson:"salary_max,omitempty" json:"salary_max,omitempty"`
	Status         JobStatus  `bson:"status" json:"status"`
	Deadline       *time.Time `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Tags           []string   `bson:"tags,omitempty" json:"tags,omitempty"`
	PostedByUserID string     `bson:"posted_by_user_id" json:"posted_by_user_id"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `bson:"updated_at" json:"updated_at"`
}

type Company struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Industry     string    `bson:"industry" json:"industry"`
	Address      string    `bson:"address" json:"address"`
	LogoURL      string    `bson:"logo_url" json:"logo_url"`
	Website      string    `bson:"website" json:"website"`
	RecruiterID  string    `bson:"recruiter_id" json:"recruiter_id"`
	IsVerified   bool      `bson:"is_verified" json:"is_verified"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
	ContactEmail string    `bson:"contact_email" json:"contact_email"`
}

// Location belongs to a job. The job does not store the location ID,
// the location stores the ID of the job that owns it.
type Location struct {
	ID      string `bson:"_id" json:"id"`
	JobID   string `bson:"job_id" json:"job_id"`
	City    string `bson:"city" json:"city"`
	Address string `bson:"address" json:"address"`
}

// Category is linked to its job the same way as Location.
type Category struct {
	ID    string `bson:"_id" json:"id"`
	JobID string `bson:"job_id" json:"job_id"`
	Name  string `bson:"name" json:"name"`
}

type User struct {
	ID        string     `bson:"_id" json:"id"`
	Email     string     `bson:"email" json:"email"`
	Name      string     `bson:"name" json:"name"`
	Role      string     `bson:"role" json:"role"`
	Status    UserStatus `bson:"status" json:"status"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

type JobSeekerProfile struct {
	ID                string    `bson:"_id" json:"id"`
	UserID            string    `bson:"user_id" json:"user_id"`
	FullName          string    `bson:"full_name" json:"full_name"`
	ProfessionalTitle string    `bson:"professional_title" json:"professional_title"`
	Summary           string    `bson:"summary" json:"summary"`
	Skills            []string  `bson:"skills,omitempty" json:"skills,omitempty"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

type Application struct {
	ID          string            `bson:"_id" json:"id"`
	JobID       string            `bson:"job_id" json:"job_id"`
	JobSeekerID string            `bson:"job_seeker_id" json:"job_seeker_id"`
	ResumeURL   string            `bson:"resume_url" json:"resume_url"`
	CoverLetter string            `bson:"cover_letter,omitempty" json:"cover_letter,omitempty"`
	Status      ApplicationStatus `bson:"status" json:"status"`
	AppliedAt   time.Time         `bson:"applied_at" json:"applied_at"`
	UpdatedAt   time.Time         `bson:"updated_at" json:"updated_at"`
}

type ChatMessage struct {
	ID          string        `bson:"_id" json:"id"`
	ChatID      string        `bson:"chat_id" json:"chat_id"`
	SenderID    string        `bson:"sender_id" json:"sender_id"`
	RecipientID string        `bson:"recipient_id" json:"recipient_id"`
	Content     string        `bson:"content" json:"content"`
	Status      MessageStatus `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
}

// SystemStats holds the size of the board
type SystemStats struct {
	Users     int64 `json:"users"`
	Jobs      int64 `json:"jobs"`
	Companies int64 `json:"companies"`
}

// ApplicationStats holds per-status counts of a job seeker's applications
type ApplicationStats struct {
	Total        int64 `json:"total"`
	Pending      int64 `json:"pending"`
	Interviewing int64 `json:"interviewing"`
	Offered      int64 `json:"offered"`
	Rejected     int64 `json:"rejected"`
	Cancelled    int64 `json:"cancelled"`
}

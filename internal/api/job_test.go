package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	mockdb "github.com/aalug/go-gin-job-board/internal/db/mock"
	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
	"github.com/aalug/go-gin-job-board/internal/esearch"
	mockesearch "github.com/aalug/go-gin-job-board/internal/esearch/mock"
	"github.com/aalug/go-gin-job-board/internal/service"
	"github.com/aalug/go-gin-job-board/internal/worker"
	mockwk "github.com/aalug/go-gin-job-board/internal/worker/mock"
	"github.com/aalug/go-gin-job-board/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestListJobsAPI(t *testing.T) {
	company := generateRandomCompany()
	jobs := []db.Job{generateRandomJob(company.ID), generateRandomJob(company.ID)}
	location := db.Location{ID: randomID(), JobID: jobs[0].ID, City: utils.RandomElement(utils.Locations)}

	minSalary := 1900.0
	fullTime := db.JobTypeFullTime
	open := db.JobStatusOpen

	testCases := []struct {
		name          string
		query         url.Values
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			query: url.Values{
				"keyword":       {"golang"},
				"location_city": {location.City},
				"min_salary":    {"1900"},
				"job_type":      {"FULL_TIME"},
				"status":        {"open"},
				"page":          {"1"},
				"size":          {"2"},
				"sort_by":       {"salary_min"},
				"sort_dir":      {"asc"},
			},
			buildStubs: func(store *mockdb.MockStore) {
				criteria := db.JobSearchCriteria{
					Keyword:      "golang",
					LocationCity: location.City,
					MinSalary:    &minSalary,
					JobType:      &fullTime,
					Status:       &open,
				}
				store.EXPECT().
					SearchJobs(gomock.Any(), gomock.Eq(criteria),
						gomock.Eq(db.Sort{Field: "salary_min", Direction: db.SortAsc}),
						gomock.Eq(db.PageRequest{Page: 1, Size: 2})).
					Times(1).
					Return(db.Page[db.Job]{Content: jobs, TotalElements: 4, PageIndex: 1, PageSize: 2, TotalPages: 2}, nil)
				store.EXPECT().
					ListCompaniesByIDs(gomock.Any(), gomock.Eq([]string{company.ID})).
					Times(1).
					Return([]db.Company{company}, nil)
				store.EXPECT().
					ListLocationsByJobIDs(gomock.Any(), gomock.Eq([]string{jobs[0].ID, jobs[1].ID})).
					Times(1).
					Return([]db.Location{location}, nil)
				store.EXPECT().
					ListCategoriesByJobIDs(gomock.Any(), gomock.Any()).
					Times(1).
					Return([]db.Category{}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				got := requireBodyMatchPage[service.JobDetails](t, recorder.Body, 4, 1, 2)
				require.Len(t, got, 2)
				require.Equal(t, jobs[0].ID, got[0].ID)
				require.Equal(t, company.Name, got[0].Company.Name)
				require.Equal(t, location.City, got[0].Location.City)
				require.Nil(t, got[1].Location)
				require.Nil(t, got[0].Category)
			},
		},
		{
			name:  "Default Page",
			query: url.Values{},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SearchJobs(gomock.Any(), gomock.Eq(db.JobSearchCriteria{}), gomock.Eq(db.Sort{}),
						gomock.Eq(db.PageRequest{Page: 0, Size: db.DefaultPageSize})).
					Times(1).
					Return(db.Page[db.Job]{Content: []db.Job{}, PageSize: db.DefaultPageSize}, nil)
				store.EXPECT().ListCompaniesByIDs(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				got := requireBodyMatchPage[service.JobDetails](t, recorder.Body, 0, 0, db.DefaultPageSize)
				require.Empty(t, got)
			},
		},
		{
			name:  "Invalid Job Type",
			query: url.Values{"job_type": {"SEASONAL"}},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().SearchJobs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "Negative Salary",
			query: url.Values{"min_salary": {"-1"}},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().SearchJobs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "Page Size Too Big",
			query: url.Values{"size": {"101"}},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().SearchJobs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "Unknown Sort Field",
			query: url.Values{"sort_by": {"password"}},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SearchJobs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Page[db.Job]{}, fmt.Errorf("%w: cannot sort by %q", db.ErrInvalidCriteria, "password"))
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "Timeout",
			query: url.Values{},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SearchJobs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Page[db.Job]{}, fmt.Errorf("search jobs: %w", context.DeadlineExceeded))
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusGatewayTimeout, recorder.Code)
			},
		},
		{
			name:  "Internal Server Error",
			query: url.Values{},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SearchJobs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Page[db.Job]{}, errors.New("connection reset"))
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store, nil, nil)
			recorder := httptest.NewRecorder()

			req, err := http.NewRequest(http.MethodGet, "/api/v1/jobs?"+tc.query.Encode(), nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, req)

			tc.checkResponse(recorder)
		})
	}
}

func TestGetJobAPI(t *testing.T) {
	company := generateRandomCompany()
	job := generateRandomJob(company.ID)

	testCases := []struct {
		name          string
		jobID         string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "OK",
			jobID: job.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetJob(gomock.Any(), gomock.Eq(job.ID)).Times(1).Return(job, nil)
				store.EXPECT().ListCompaniesByIDs(gomock.Any(), gomock.Eq([]string{company.ID})).Times(1).Return([]db.Company{company}, nil)
				store.EXPECT().ListLocationsByJobIDs(gomock.Any(), gomock.Eq([]string{job.ID})).Times(1).Return([]db.Location{}, nil)
				store.EXPECT().ListCategoriesByJobIDs(gomock.Any(), gomock.Eq([]string{job.ID})).Times(1).Return([]db.Category{}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				got := requireBodyMatch[service.JobDetails](t, recorder.Body)
				require.Equal(t, job.ID, got.ID)
				require.Equal(t, job.Title, got.Title)
				require.Equal(t, company.ID, got.Company.ID)
			},
		},
		{
			name:  "Invalid ID",
			jobID: "not-an-id",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetJob(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "Not Found",
			jobID: job.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetJob(gomock.Any(), gomock.Eq(job.ID)).Times(1).Return(db.Job{}, db.ErrNotFound)
				store.EXPECT().ListCompaniesByIDs(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:  "Internal Server Error Resolving",
			jobID: job.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetJob(gomock.Any(), gomock.Eq(job.ID)).Times(1).Return(job, nil)
				store.EXPECT().ListCompaniesByIDs(gomock.Any(), gomock.Any()).Times(1).Return(nil, errors.New("connection reset"))
				store.EXPECT().ListLocationsByJobIDs(gomock.Any(), gomock.Any()).AnyTimes().Return([]db.Location{}, nil)
				store.EXPECT().ListCategoriesByJobIDs(gomock.Any(), gomock.Any()).AnyTimes().Return([]db.Category{}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store, nil, nil)
			recorder := httptest.NewRecorder()

			req, err := http.NewRequest(http.MethodGet, "/api/v1/jobs/"+tc.jobID, nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, req)

			tc.checkResponse(recorder)
		})
	}
}

func TestUpdateJobStatusAPI(t *testing.T) {
	job := generateRandomJob(randomID())
	closed := job
	closed.Status = db.JobStatusClosed

	testCases := []struct {
		name          string
		jobID         string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "OK",
			jobID: job.ID,
			body:  gin.H{"status": "CLOSED"},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					UpdateJobStatus(gomock.Any(), gomock.Eq(job.ID), gomock.Eq(db.JobStatusClosed)).
					Times(1).
					Return(closed, nil)
				distributor.EXPECT().
					DistributeTaskIndexJob(gomock.Any(), gomock.Eq(&worker.PayloadIndexJob{JobID: job.ID}),
						gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				got := requireBodyMatch[db.Job](t, recorder.Body)
				require.Equal(t, db.JobStatusClosed, got.Status)
			},
		},
		{
			name:  "Distribute Error",
			jobID: job.ID,
			body:  gin.H{"status": "CLOSED"},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					UpdateJobStatus(gomock.Any(), gomock.Eq(job.ID), gomock.Eq(db.JobStatusClosed)).
					Times(1).
					Return(closed, nil)
				distributor.EXPECT().
					DistributeTaskIndexJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(errors.New("redis is down"))
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name:  "Invalid Status",
			jobID: job.ID,
			body:  gin.H{"status": "ARCHIVED"},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				distributor.EXPECT().DistributeTaskIndexJob(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "Missing Status",
			jobID: job.ID,
			body:  gin.H{},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "Not Found",
			jobID: job.ID,
			body:  gin.H{"status": "CLOSED"},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					UpdateJobStatus(gomock.Any(), gomock.Eq(job.ID), gomock.Any()).
					Times(1).
					Return(db.Job{}, fmt.Errorf("update jobs.status: %w", db.ErrNotFound))
				distributor.EXPECT().DistributeTaskIndexJob(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:  "Invalid ID",
			jobID: "123",
			body:  gin.H{"status": "CLOSED"},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mockdb.NewMockStore(ctrl)
			distributor := mockwk.NewMockTaskDistributor(ctrl)
			tc.buildStubs(store, distributor)

			server := newTestServer(t, store, nil, distributor)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			req, err := http.NewRequest(http.MethodPatch, "/api/v1/jobs/"+tc.jobID+"/status", bytes.NewReader(data))
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, req)

			tc.checkResponse(recorder)
		})
	}
}

func TestListJobsByCompanyAPI(t *testing.T) {
	company := generateRandomCompany()
	jobs := []db.Job{generateRandomJob(company.ID)}

	testCases := []struct {
		name          string
		companyID     string
		query         url.Values
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:      "OK",
			companyID: company.ID,
			query:     url.Values{"size": {"5"}},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListJobsByCompany(gomock.Any(), gomock.Eq(company.ID), gomock.Eq(db.Sort{}), gomock.Eq(db.PageRequest{Page: 0, Size: 5})).
					Times(1).
					Return(db.Page[db.Job]{Content: jobs, TotalElements: 1, PageSize: 5, TotalPages: 1}, nil)
				store.EXPECT().ListCompaniesByIDs(gomock.Any(), gomock.Any()).Times(1).Return([]db.Company{company}, nil)
				store.EXPECT().ListLocationsByJobIDs(gomock.Any(), gomock.Any()).Times(1).Return([]db.Location{}, nil)
				store.EXPECT().ListCategoriesByJobIDs(gomock.Any(), gomock.Any()).Times(1).Return([]db.Category{}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				got := requireBodyMatchPage[service.JobDetails](t, recorder.Body, 1, 0, 5)
				require.Len(t, got, 1)
				require.Equal(t, company.Name, got[0].Company.Name)
			},
		},
		{
			name:      "Negative Page",
			companyID: company.ID,
			query:     url.Values{"page": {"-1"}},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().ListJobsByCompany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:      "Invalid Company ID",
			companyID: "company",
			query:     url.Values{},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().ListJobsByCompany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store, nil, nil)
			recorder := httptest.NewRecorder()

			req, err := http.NewRequest(http.MethodGet, "/api/v1/companies/"+tc.companyID+"/jobs?"+tc.query.Encode(), nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, req)

			tc.checkResponse(recorder)
		})
	}
}

func TestSearchJobsAPI(t *testing.T) {
	documents := []esearch.JobDocument{
		{ID: randomID(), Title: "Golang Developer", Status: db.JobStatusOpen},
		{ID: randomID(), Title: "Senior Golang Developer", Status: db.JobStatusOpen},
	}

	testCases := []struct {
		name          string
		query         url.Values
		buildStubs    func(client *mockesearch.MockESearchClient)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "OK",
			query: url.Values{"search": {"golang"}, "page": {"0"}, "size": {"10"}},
			buildStubs: func(client *mockesearch.MockESearchClient) {
				client.EXPECT().
					SearchJobs(gomock.Any(), gomock.Eq("golang"), gomock.Eq(db.PageRequest{Page: 0, Size: 10})).
					Times(1).
					Return(db.Page[esearch.JobDocument]{Content: documents, TotalElements: 2, PageSize: 10, TotalPages: 1}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				got := requireBodyMatchPage[esearch.JobDocument](t, recorder.Body, 2, 0, 10)
				require.Len(t, got, 2)
				require.Equal(t, documents[0].ID, got[0].ID)
			},
		},
		{
			name:  "Missing Search",
			query: url.Values{"page": {"0"}},
			buildStubs: func(client *mockesearch.MockESearchClient) {
				client.EXPECT().SearchJobs(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "Internal Server Error",
			query: url.Values{"search": {"golang"}},
			buildStubs: func(client *mockesearch.MockESearchClient) {
				client.EXPECT().
					SearchJobs(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Page[esearch.JobDocument]{}, errors.New("cluster unavailable"))
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mockdb.NewMockStore(ctrl)

			client := mockesearch.NewMockESearchClient(ctrl)
			tc.buildStubs(client)

			server := newTestServer(t, store, client, nil)
			recorder := httptest.NewRecorder()

			req, err := http.NewRequest(http.MethodGet, "/api/v1/jobs/search?"+tc.query.Encode(), nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, req)

			tc.checkResponse(recorder)
		})
	}
}

func generateRandomJob(companyID string) db.Job {
	salaryMin := utils.RandomFloat(1000, 2000)
	salaryMax := salaryMin + utils.RandomFloat(0, 1000)
	return db.Job{
		ID:             randomID(),
		Title:          utils.RandomElement(utils.GenerateDeveloperJobs()),
		CompanyID:      companyID,
		Description:    utils.RandomString(30),
		EmploymentType: db.JobTypeFullTime,
		SalaryMin:      &salaryMin,
		SalaryMax:      &salaryMax,
		Status:         db.JobStatusOpen,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
}

func generateRandomCompany() db.Company {
	return db.Company{
		ID:       randomID(),
		Name:     utils.RandomString(10),
		Industry: utils.RandomElement(utils.Categories),
	}
}

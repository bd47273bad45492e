package esearch

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
	"github.com/aalug/go-gin-job-board/pkg/utils"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient returns a client talking to a fake Elasticsearch node
// served by handler
func newTestClient(t *testing.T, handler http.HandlerFunc) *ESClient {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	c, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{server.URL},
	})
	require.NoError(t, err)

	return &ESClient{client: c}
}

// bulkHandler answers a bulk request acknowledging every action in it and
// sends the document IDs it saw to ids
func bulkHandler(t *testing.T, ids chan<- string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var items []map[string]interface{}

		scanner := bufio.NewScanner(r.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		isAction := true
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}
			if isAction {
				var action map[string]map[string]interface{}
				assert.NoError(t, json.Unmarshal(line, &action))
				for name, meta := range action {
					id, _ := meta["_id"].(string)
					ids <- id
					items = append(items, map[string]interface{}{
						name: map[string]interface{}{"_id": id, "status": 201, "result": "created"},
					})
				}
			}
			isAction = !isAction
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"took":   1,
			"errors": false,
			"items":  items,
		})
	}
}

func createRandomJobDocument() JobDocument {
	salaryMin := utils.RandomFloat(1000, 2000)
	salaryMax := salaryMin + utils.RandomFloat(0, 1000)
	return JobDocument{
		ID:             utils.RandomString(24),
		Title:          utils.RandomElement(utils.GenerateEngineerJobs()),
		CompanyName:    utils.RandomString(6),
		Description:    utils.RandomString(30),
		EmploymentType: db.JobTypeFullTime,
		Status:         db.JobStatusOpen,
		City:           utils.RandomElement(utils.Locations),
		Category:       utils.RandomElement(utils.Categories),
		SalaryMin:      &salaryMin,
		SalaryMax:      &salaryMax,
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
}

package esearch

import (
	"github.com/elastic/go-elasticsearch/v8"
)

// ConnectWithElasticsearch creates a new elasticsearch client for the node
// at address
func ConnectWithElasticsearch(address string) (*elasticsearch.Client, error) {
	return elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{
			address,
		},
	})
}

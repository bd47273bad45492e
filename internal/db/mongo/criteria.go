package db

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// JobSearchCriteria holds the optional job filters. A zero value (empty
// string or nil pointer) means the filter is absent.
type JobSearchCriteria struct {
	Keyword       string
	LocationCity  string
	CategoryName  string
	MinSalary     *float64
	MaxSalary     *float64
	MinExperience *int
	JobType       *JobType
	Status        *JobStatus
}

const (
	locationLookupField = "location_info"
	categoryLookupField = "category_info"
)

// CompiledQuery is the result of compiling search criteria. Lookups join the
// reverse-linked collections that some clauses need, Match is the predicate.
type CompiledQuery struct {
	Lookups []bson.D
	Match   bson.D
	unset   []string
}

// Pipeline returns the stages of the compiled query. Joined arrays are
// removed after the match so decoded records keep their own shape.
func (q CompiledQuery) Pipeline() mongo.Pipeline {
	pipeline := make(mongo.Pipeline, 0, len(q.Lookups)+2)
	pipeline = append(pipeline, q.Lookups...)
	pipeline = append(pipeline, bson.D{{Key: "$match", Value: q.Match}})
	if len(q.unset) > 0 {
		fields := bson.A{}
		for _, f := range q.unset {
			fields = append(fields, f)
		}
		pipeline = append(pipeline, bson.D{{Key: "$unset", Value: fields}})
	}
	return pipeline
}

// clauses accumulates the predicate of a query. Each added clause narrows
// the result, absent filters add nothing.
type clauses []bson.D

func (c *clauses) add(clause bson.D) {
	*c = append(*c, clause)
}

// match folds the clauses into one predicate: none is always true,
// one is used as is, more are combined with $and.
func (c clauses) match() bson.D {
	switch len(c) {
	case 0:
		return bson.D{}
	case 1:
		return c[0]
	}
	all := make(bson.A, 0, len(c))
	for _, clause := range c {
		all = append(all, clause)
	}
	return bson.D{{Key: "$and", Value: all}}
}

// containsRegex matches s anywhere in a field, ignoring case. s is matched
// literally.
func containsRegex(s string) bson.Regex {
	return bson.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// keywordClause matches documents where any of the fields contains keyword.
func keywordClause(keyword string, fields ...string) bson.D {
	if len(fields) == 1 {
		return bson.D{{Key: fields[0], Value: containsRegex(keyword)}}
	}
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.D{{Key: f, Value: containsRegex(keyword)}})
	}
	return bson.D{{Key: "$or", Value: or}}
}

func reverseLookup(from, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: "_id"},
		{Key: "foreignField", Value: "job_id"},
		{Key: "as", Value: as},
	}}}
}

// CompileJobSearch translates the criteria into a single pipeline predicate.
// Salary filters use overlap semantics: MinSalary keeps jobs whose upper
// bound reaches it and MaxSalary keeps jobs whose lower bound does not
// exceed it. MinExperience is the searcher's experience, so jobs requiring
// more are excluded.
func CompileJobSearch(c JobSearchCriteria) (CompiledQuery, error) {
	if err := c.validate(); err != nil {
		return CompiledQuery{}, err
	}

	var (
		q  CompiledQuery
		cl clauses
	)

	if keyword := strings.TrimSpace(c.Keyword); keyword != "" {
		cl.add(keywordClause(keyword, "title", "description"))
	}

	if city := strings.TrimSpace(c.LocationCity); city != "" {
		q.Lookups = append(q.Lookups, reverseLookup(collectionLocations, locationLookupField))
		q.unset = append(q.unset, locationLookupField)
		cl.add(bson.D{{Key: locationLookupField, Value: bson.D{
			{Key: "$elemMatch", Value: bson.D{{Key: "city", Value: containsRegex(city)}}},
		}}})
	}

	if name := strings.TrimSpace(c.CategoryName); name != "" {
		q.Lookups = append(q.Lookups, reverseLookup(collectionCategories, categoryLookupField))
		q.unset = append(q.unset, categoryLookupField)
		cl.add(bson.D{{Key: categoryLookupField, Value: bson.D{
			{Key: "$elemMatch", Value: bson.D{{Key: "name", Value: containsRegex(name)}}},
		}}})
	}

	if c.MinSalary != nil {
		cl.add(bson.D{{Key: "salary_max", Value: bson.D{{Key: "$gte", Value: *c.MinSalary}}}})
	}
	if c.MaxSalary != nil {
		cl.add(bson.D{{Key: "salary_min", Value: bson.D{{Key: "$lte", Value: *c.MaxSalary}}}})
	}
	if c.MinExperience != nil {
		cl.add(bson.D{{Key: "min_experience", Value: bson.D{{Key: "$lte", Value: *c.MinExperience}}}})
	}
	if c.JobType != nil {
		cl.add(bson.D{{Key: "employment_type", Value: string(*c.JobType)}})
	}
	if c.Status != nil {
		cl.add(bson.D{{Key: "status", Value: string(*c.Status)}})
	}

	q.Match = cl.match()
	return q, nil
}

func (c JobSearchCriteria) validate() error {
	for name, v := range map[string]*float64{"min_salary": c.MinSalary, "max_salary": c.MaxSalary} {
		if v == nil {
			continue
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidCriteria, name)
		}
	}
	if c.MinExperience != nil && *c.MinExperience < 0 {
		return fmt.Errorf("%w: min_experience must not be negative", ErrInvalidCriteria)
	}
	if c.JobType != nil && !c.JobType.Valid() {
		return fmt.Errorf("%w: unknown job type %q", ErrInvalidCriteria, *c.JobType)
	}
	if c.Status != nil && !c.Status.Valid() {
		return fmt.Errorf("%w: unknown job status %q", ErrInvalidCriteria, *c.Status)
	}
	return nil
}

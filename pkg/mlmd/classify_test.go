package mlmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterURIsByType(t *testing.T) {
	types := []ArtifactType{
		{ID: 1, Name: "ExampleStatistics"},
		{ID: 2, Name: "Schema"},
	}
	artifacts := []Artifact{
		{ID: 10, TypeID: 1, URI: "gs://bkt/a"},
		{ID: 11, TypeID: 2, URI: "gs://bkt/schema"},
		{ID: 12, TypeID: 1, URI: ""},
		{ID: 13, TypeID: 1, URI: "gs://bkt/b"},
	}

	uris := FilterURIsByType(types, artifacts, "ExampleStatistics")
	assert.Equal(t, []string{"gs://bkt/a", "gs://bkt/b"}, uris, "order preserved, empty URI skipped")

	assert.Nil(t, FilterURIsByType(types, artifacts, "ModelEvaluation"), "unknown type name yields nothing")
}

func TestFilterURIsByTypeDuplicateNames(t *testing.T) {
	// A store may register the same type name under several IDs (e.g.
	// after a schema migration). Artifacts under any of them match.
	types := []ArtifactType{
		{ID: 1, Name: "ExampleStatistics"},
		{ID: 3, Name: "ExampleStatistics"},
	}
	artifacts := []Artifact{
		{ID: 10, TypeID: 1, URI: "gs://bkt/old"},
		{ID: 11, TypeID: 3, URI: "gs://bkt/new"},
	}

	uris := FilterURIsByType(types, artifacts, "ExampleStatistics")
	assert.Equal(t, []string{"gs://bkt/old", "gs://bkt/new"}, uris)
}

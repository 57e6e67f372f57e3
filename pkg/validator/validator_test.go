package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string `json:"name" validate:"required"`
	Kind    string `json:"type" validate:"required,oneof=pdf image"`
	Year    string `json:"year" validate:"required,year"`
	FileURL string `json:"fileUrl" label:"file" validate:"required,url"`
	Site    string `json:"site" validate:"omitempty,url"`
}

func TestStructValid(t *testing.T) {
	err := Struct(sample{Name: "a", Kind: "pdf", Year: "2024", FileURL: "https://cdn.example.com/a.pdf"})
	assert.NoError(t, err)
}

func TestStructFieldMessages(t *testing.T) {
	err := Struct(sample{Kind: "doc", Year: "24", Site: "not a url"})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)

	assert.Equal(t, "name is required", verr.Fields["name"])
	assert.Equal(t, "type must be one of: pdf, image", verr.Fields["type"])
	assert.Equal(t, "year must be a 4-digit year", verr.Fields["year"])
	assert.Equal(t, "file is required", verr.Fields["file"])
	assert.Equal(t, "site must be a valid URL", verr.Fields["site"])
	assert.Contains(t, verr.Error(), "file is required")
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"React, Node, , CSS", []string{"React", "Node", "CSS"}},
		{"", []string{}},
		{" , ,", []string{}},
		{"Go,Go", []string{"Go", "Go"}},
		{"  single  ", []string{"single"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitList(tt.in), tt.in)
	}
}

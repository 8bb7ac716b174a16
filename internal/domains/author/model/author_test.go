package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthor_URL(t *testing.T) {
	id := uuid.MustParse("5f0d6a5e-8d4e-4a39-9a57-0d3c2b0d4a11")
	a := Author{ID: id}

	assert.Equal(t, "/catalog/author/5f0d6a5e-8d4e-4a39-9a57-0d3c2b0d4a11", a.URL())
}

func TestAuthor_Name(t *testing.T) {
	assert.Equal(t, "Austen, Jane", Author{FirstName: "Jane", FamilyName: "Austen"}.Name())
	assert.Equal(t, "", Author{FirstName: "Jane"}.Name())
}

func TestAuthor_Lifespan(t *testing.T) {
	born := time.Date(1775, 12, 16, 0, 0, 0, 0, time.UTC)
	died := time.Date(1817, 7, 18, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "", Author{}.Lifespan())
	assert.Equal(t, "Dec 16, 1775 - Jul 18, 1817", Author{DateOfBirth: &born, DateOfDeath: &died}.Lifespan())
	assert.Equal(t, "Dec 16, 1775 - ", Author{DateOfBirth: &born}.Lifespan())
}

func TestAuthorForm_Validate(t *testing.T) {
	tests := []struct {
		name     string
		form     AuthorForm
		messages []string
	}{
		{
			name: "valid_minimal",
			form: AuthorForm{FirstName: " Jane ", FamilyName: "Austen"},
		},
		{
			name: "valid_with_dates",
			form: AuthorForm{FirstName: "Jane", FamilyName: "Austen", DateOfBirth: "1775-12-16", DateOfDeath: "1817-07-18"},
		},
		{
			name: "valid_reduced_precision_dates",
			form: AuthorForm{FirstName: "Jane", FamilyName: "Austen", DateOfBirth: "1775", DateOfDeath: "1817-07"},
		},
		{
			name: "valid_basic_and_space_separated_dates",
			form: AuthorForm{FirstName: "Jane", FamilyName: "Austen", DateOfBirth: "17751216", DateOfDeath: "1817-07-18 04:30"},
		},
		{
			name: "everything_missing",
			form: AuthorForm{},
			messages: []string{
				"First name must be specified",
				"First name has non-alphanumeric characters",
				"Family name must be specified",
				"Family name has non-alphanumeric characters",
			},
		},
		{
			name: "blank_first_name",
			form: AuthorForm{FirstName: "   ", FamilyName: "Austen"},
			messages: []string{
				"First name must be specified",
				"First name has non-alphanumeric characters",
			},
		},
		{
			name: "non_alphanumeric_and_bad_dates",
			form: AuthorForm{FirstName: "Jane-Anne", FamilyName: "Aus ten", DateOfBirth: "yesterday", DateOfDeath: "1817-02-30"},
			messages: []string{
				"First name has non-alphanumeric characters",
				"Family name has non-alphanumeric characters",
				"Invalid date of birth",
				"Invalid date of death",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()

			got := make([]string, 0, len(errs))
			for _, e := range errs {
				got = append(got, e.Message)
			}
			if tt.messages == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.messages, got)
		})
	}
}

func TestAuthorForm_ToEntity(t *testing.T) {
	form := AuthorForm{FirstName: " Jane ", FamilyName: "Austen", DateOfBirth: "1775-12-16"}
	require.Empty(t, form.Validate())

	a, err := form.ToEntity()
	require.NoError(t, err)

	assert.Equal(t, "Jane", a.FirstName)
	assert.Equal(t, "Austen", a.FamilyName)
	require.NotNil(t, a.DateOfBirth)
	assert.Equal(t, 1775, a.DateOfBirth.Year())
	assert.Nil(t, a.DateOfDeath)
	assert.Equal(t, uuid.Nil, a.ID)
}

package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayQuizRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantPrev    []string
		wantAny     bool
		wantCatID   string
		expectError bool
	}{
		{
			name:      "numeric ids",
			body:      `{"previous_questions":[5,9],"quiz_category":{"id":0,"type":"click"}}`,
			wantPrev:  []string{"5", "9"},
			wantAny:   true,
			wantCatID: "0",
		},
		{
			name:      "string ids",
			body:      `{"previous_questions":["01HZX0","01HZX1"],"quiz_category":{"id":"3","type":"Art"}}`,
			wantPrev:  []string{"01HZX0", "01HZX1"},
			wantCatID: "3",
		},
		{
			name:     "missing category",
			body:     `{"previous_questions":[]}`,
			wantPrev: []string{},
			wantAny:  true,
		},
		{
			name:     "null category id",
			body:     `{"quiz_category":{"id":null}}`,
			wantPrev: []string{},
			wantAny:  true,
		},
		{
			name:        "boolean id",
			body:        `{"quiz_category":{"id":true}}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req PlayQuizRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrev, req.PreviousIDs())
			assert.Equal(t, tt.wantAny, req.QuizCategory.ID.IsAny())
			assert.Equal(t, tt.wantCatID, req.QuizCategory.ID.String())
		})
	}
}

func TestCreateQuestionRequest_NumericCategory(t *testing.T) {
	var req CreateQuestionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"question":"Q","answer":"A","category":4,"difficulty":2}`), &req))
	assert.Equal(t, FlexibleID("4"), req.Category)
	assert.Equal(t, 2, req.Difficulty)
}

func TestRecipeInput_Unmarshal(t *testing.T) {
	t.Run("single object", func(t *testing.T) {
		var req CreateDrinkRequest
		require.NoError(t, json.Unmarshal([]byte(`{"title":"Water","recipe":{"name":"water","color":"blue","parts":1}}`), &req))
		assert.Equal(t, RecipeInput{{Name: "water", Color: "blue", Parts: 1}}, req.Recipe)
	})

	t.Run("list", func(t *testing.T) {
		var req CreateDrinkRequest
		require.NoError(t, json.Unmarshal([]byte(`{"title":"Latte","recipe":[{"name":"milk","color":"grey","parts":3},{"name":"coffee","color":"brown","parts":1}]}`), &req))
		assert.Len(t, req.Recipe, 2)
	})

	t.Run("absent on patch", func(t *testing.T) {
		var req UpdateDrinkRequest
		require.NoError(t, json.Unmarshal([]byte(`{"title":"Renamed"}`), &req))
		assert.Nil(t, req.Recipe)
		require.NotNil(t, req.Title)
		assert.Equal(t, "Renamed", *req.Title)
	})

	t.Run("empty list", func(t *testing.T) {
		var req UpdateDrinkRequest
		require.NoError(t, json.Unmarshal([]byte(`{"recipe":[]}`), &req))
		assert.NotNil(t, req.Recipe)
		assert.Len(t, req.Recipe, 0)
		assert.Nil(t, req.Title)
	})

	t.Run("invalid", func(t *testing.T) {
		var req CreateDrinkRequest
		assert.Error(t, json.Unmarshal([]byte(`{"recipe":"water"}`), &req))
	})
}

func TestPlayQuizResponse_FinishedShape(t *testing.T) {
	body, err := json.Marshal(PlayQuizResponse{Success: true, Finished: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"question":null,"finished":true}`, string(body))
}

package dto

// CategoriesResponse maps category ID to category type
// @Description All categories keyed by ID
type CategoriesResponse struct {
	Success    bool              `json:"success"`
	Categories map[string]string `json:"categories"`
}

// CategoryResponse represents a category in the API response
type CategoryResponse struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// CreateCategoryRequest represents a request to create a category
// @Description Request body for creating a category
type CreateCategoryRequest struct {
	Type string `json:"type"`
}

// CreateCategoryResponse wraps the newly created category
type CreateCategoryResponse struct {
	Success  bool             `json:"success"`
	Category CategoryResponse `json:"category"`
}

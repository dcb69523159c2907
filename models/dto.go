package models

import "time"

// RegisterRequest is validated through the helper's validator so field
// failures come back grouped and translated.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// TokenRequest is the OAuth2 password grant form. The username field
// carries the email address.
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
}

type UserUpdateRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email" binding:"omitempty,email"`
	Role     UserRole `json:"role" binding:"omitempty,oneof=owner user"`
}

type UserListParams struct {
	Email     string     `form:"email"`
	Username  string     `form:"username"`
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02T15:04:05Z07:00"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description"`
}

type CreateArticleRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
	Text        string `json:"text" binding:"required"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	IsPublished bool   `json:"is_published"`
	ReadTime    int    `json:"read_time"`
}

// UpdateArticleRequest carries full-replace semantics: every field
// overwrites the stored value.
type UpdateArticleRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
	Text        string `json:"text" binding:"required"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	IsPublished bool   `json:"is_published"`
	ReadTime    int    `json:"read_time"`
}

type ArticleListParams struct {
	CategoryID  uint  `form:"category_id"`
	AuthorID    uint  `form:"author_id"`
	IsPublished *bool `form:"is_published"`
}

type PageParams struct {
	Skip  int `form:"skip,default=0"`
	Limit int `form:"limit,default=10"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// LikeToggleResponse echoes the affected row. Message is set only on the
// removal branch of a toggle.
type LikeToggleResponse struct {
	ID        uint      `json:"id"`
	ArticleID uint      `json:"article_id"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Message   string    `json:"message,omitempty"`
}

// internals/features/school/comments/dto/comment_dto.go
package dto

type CreateCommentRequest struct {
	CommentText string `json:"comment_text" validate:"required"`
}

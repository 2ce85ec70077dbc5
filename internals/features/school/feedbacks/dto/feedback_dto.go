// internals/features/school/feedbacks/dto/feedback_dto.go
package dto

type CreateFeedbackRequest struct {
	FeedbackMessage string `json:"feedback_message" validate:"required"`
}

type ReplyFeedbackRequest struct {
	Message string `json:"message" validate:"required"`
}

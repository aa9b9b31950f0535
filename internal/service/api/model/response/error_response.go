// Package response API 공통 응답 모델을 정의합니다.
package response

// ErrorResponse API 오류 응답
type ErrorResponse struct {
	// ResultCode HTTP 상태 코드 (예: 404, 429, 500)
	ResultCode int `json:"result_code" example:"404"`

	// Message 에러 메시지
	Message string `json:"message" example:"요청한 리소스를 찾을 수 없습니다"`
}

package telegram

import (
	"fmt"
	"html"

	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
	"github.com/darkkaiser/agileflow-probe/pkg/strutil"
)

const (
	// maxTitleLength 제목이 길어 HTML 태그가 닫히지 않은 채 분할되는 것을 막기 위한 제한
	maxTitleLength = 200

	// 형식: "<b>【 제목 】</b>\n\n본문"
	titleFormat = "<b>【 %s 】</b>\n\n%s"

	// 형식: "본문\n\n*** 오류가 발생하였습니다. ***"
	errorFormat = "%s\n\n*** 오류가 발생하였습니다. ***"
)

// buildMessage 알림을 HTML 모드로 전송할 메시지 본문으로 변환합니다.
// 본문과 제목은 평문으로 취급되어 HTML 이스케이프됩니다.
func buildMessage(n contract.Notification) string {
	message := html.EscapeString(n.Message)

	if n.Title != "" {
		message = fmt.Sprintf(titleFormat, html.EscapeString(strutil.Truncate(n.Title, maxTitleLength)), message)
	}

	if n.ErrorOccurred {
		message = fmt.Sprintf(errorFormat, message)
	}

	return message
}

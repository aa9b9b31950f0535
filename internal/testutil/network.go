// Package testutil 여러 패키지의 테스트에서 함께 사용하는 네트워크 헬퍼를 제공합니다.
package testutil

import (
	"fmt"
	"net"
	"time"

	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
)

// GetFreePort 테스트용으로 사용 가능한 임의의 포트를 반환합니다.
func GetFreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.System, "테스트용 포트를 할당할 수 없습니다")
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}

// BaseURL 로컬 포트에 대한 http:// 기준 URL을 반환합니다.
func BaseURL(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d", port)
}

// WaitForServer 서버가 해당 포트에서 리스닝할 때까지 대기합니다.
func WaitForServer(port int, timeout time.Duration) error {
	addr := fmt.Sprintf("127.0.0.1:%d", port)

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err == nil {
			conn.Close()
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}

	return apperrors.Newf(apperrors.Timeout, "서버가 %v 이내에 시작되지 않았습니다 (port: %d)", timeout, port)
}

package validation

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// ValidateHTTPURL 점검 대상의 기본 URL로 사용할 수 있는지 검사합니다.
//
// 허용: http/https 스킴, 호스트, 선택적인 포트와 경로 접두사 (예: http://gateway:9000/agileflow)
// 거부: 상대 경로, 다른 스킴, 쿼리, 프래그먼트
func ValidateHTTPURL(rawURL string) error {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return fmt.Errorf("URL은 비어있을 수 없습니다")
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return fmt.Errorf("URL 파싱 실패: 유효한 URL 형식이 아닙니다 (input=%q): %w", trimmed, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL 스킴 오류: 'http' 또는 'https'만 허용됩니다 (input=%q)", trimmed)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("URL 포맷 오류: 쿼리나 프래그먼트(#)를 포함할 수 없습니다 (input=%q)", trimmed)
	}

	return validateHostPort(u, trimmed)
}

// ValidateCORSOrigin CORS 허용 Origin 형식(Scheme://Host[:Port])인지 검사합니다. 와일드카드("*")는 허용합니다.
func ValidateCORSOrigin(origin string) error {
	trimmed := strings.TrimSpace(origin)
	if trimmed == "*" {
		return nil
	}
	if trimmed == "" {
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	}
	if strings.HasSuffix(trimmed, "/") {
		return fmt.Errorf("CORS Origin 포맷 오류: 경로 구분자('/')로 끝날 수 없습니다 (input=%q)", trimmed)
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return fmt.Errorf("CORS Origin 파싱 실패: 유효한 URL 형식이 아닙니다 (input=%q): %w", trimmed, err)
	}

	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("CORS Origin 스킴 오류: 'http' 또는 'https'만 허용됩니다 (input=%q)", trimmed)
	case u.Path != "":
		return fmt.Errorf("CORS Origin 포맷 오류: 경로(Path)를 포함할 수 없습니다 (input=%q)", trimmed)
	case u.RawQuery != "" || u.Fragment != "":
		return fmt.Errorf("CORS Origin 포맷 오류: 쿼리나 프래그먼트(#)를 포함할 수 없습니다 (input=%q)", trimmed)
	case u.User != nil:
		return fmt.Errorf("CORS Origin 포맷 오류: 사용자 자격 증명(UserInfo)을 포함할 수 없습니다 (input=%q)", trimmed)
	}

	return validateHostPort(u, trimmed)
}

func validateHostPort(u *url.URL, input string) error {
	if portStr := u.Port(); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("포트 번호가 유효하지 않습니다 (input=%q, port=%s)", input, portStr)
		}
		if err := ValidatePort(port); err != nil {
			return fmt.Errorf("%w (input=%q)", err, input)
		}
	}

	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("호스트(Host) 정보가 누락되었습니다 (input=%q)", input)
	}

	return ValidateHostname(host)
}

// ValidatePort 1-65535 범위의 포트 번호인지 검사합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

// ValidateHostname localhost, IP 주소, 또는 RFC 1123 호스트명인지 검사합니다.
//
// RFC 1123 규칙: 전체 253자 이하, 점으로 구분된 각 레이블은 1-63자의 영문/숫자/하이픈이며
// 하이픈으로 시작하거나 끝날 수 없습니다. 최상위 레이블은 숫자로만 구성될 수 없습니다.
func ValidateHostname(host string) error {
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}

	if len(host) > 253 {
		return fmt.Errorf("호스트명 전체 길이는 253자를 초과할 수 없습니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if err := validateLabel(label, host); err != nil {
			return err
		}
	}

	if tld := labels[len(labels)-1]; strings.Trim(tld, "0123456789") == "" {
		return fmt.Errorf("최상위 도메인(TLD)은 숫자로만 구성될 수 없습니다 (tld=%q)", tld)
	}

	return nil
}

func validateLabel(label, host string) error {
	if len(label) == 0 {
		return fmt.Errorf("호스트명에 빈 레이블(연속된 점 등)이 포함되어 있습니다 (host=%q)", host)
	}
	if len(label) > 63 {
		return fmt.Errorf("각 레이블은 63자를 초과할 수 없습니다 (label=%q)", label)
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return fmt.Errorf("레이블은 하이픈(-)으로 시작하거나 끝날 수 없습니다 (label=%q)", label)
	}

	for _, r := range label {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-') {
			return fmt.Errorf("호스트명은 영문, 숫자, 하이픈(-)으로만 구성되어야 합니다 (invalid_char=%q, host=%q)", r, host)
		}
	}

	return nil
}

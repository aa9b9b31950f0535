// Package strutil 로그와 알림 메시지에 사용하는 문자열 유틸리티를 제공합니다.
package strutil

import (
	"strings"
	"unicode/utf8"
)

// MaskSensitiveData 봇 토큰과 같은 민감한 값을 로그에 남길 수 있도록 일부만 남기고 마스킹합니다.
//
// 예: "123456789:ABC-DEF1234ghIkl" -> "1234***hIkl"
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}

	// 3자 이하는 전체 마스킹
	if len(data) <= 3 {
		return "***"
	}

	// 앞 4자만 표시하고 나머지는 마스킹
	if len(data) <= 12 {
		return data[:4] + "***"
	}

	// 긴 토큰은 앞 4자 + 마스킹 + 뒤 4자
	return data[:4] + "***" + data[len(data)-4:]
}

// Truncate 문자열을 최대 limit개의 룬으로 자르고, 잘린 경우 말줄임표(...)를 붙입니다.
// 결과 문자열의 룬 개수는 limit을 넘지 않습니다.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// SafeSplit 문자열을 limit 바이트 이내의 앞부분(chunk)과 나머지(remainder)로 나눕니다.
// 멀티바이트 문자(한글 등)의 중간에서 잘리지 않도록 룬 경계에서 분할합니다.
func SafeSplit(s string, limit int) (chunk, remainder string) {
	if len(s) <= limit {
		return s, ""
	}

	// limit 위치가 문자의 중간이라면 앞쪽의 룬 시작 위치로 이동합니다.
	splitIndex := limit
	for splitIndex > 0 && !utf8.RuneStart(s[splitIndex]) {
		splitIndex--
	}

	// limit 이전에 룬 시작점이 없으면 limit에서 그대로 자릅니다.
	if splitIndex == 0 {
		return s[:limit], s[limit:]
	}

	return s[:splitIndex], s[splitIndex:]
}

// SplitLines 긴 메시지를 줄 단위로 묶어 각 조각이 limit 바이트를 넘지 않도록 나눕니다.
//
// 가능한 한 줄바꿈(\n) 경계에서 나누고, 한 줄이 limit을 넘는 경우에만 SafeSplit으로 강제 분할합니다.
func SplitLines(message string, limit int) []string {
	if len(message) <= limit {
		return []string{message}
	}

	var chunks []string
	var sb strings.Builder
	sb.Grow(limit)

	flush := func() {
		if sb.Len() > 0 {
			chunks = append(chunks, sb.String())
			sb.Reset()
		}
	}

	for line := range strings.SplitSeq(message, "\n") {
		needed := len(line)
		if sb.Len() > 0 {
			needed++
		}

		if sb.Len()+needed <= limit {
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(line)
			continue
		}

		flush()

		for len(line) > limit {
			var chunk string
			chunk, line = SafeSplit(line, limit)
			chunks = append(chunks, chunk)
		}
		sb.WriteString(line)
	}
	flush()

	return chunks
}

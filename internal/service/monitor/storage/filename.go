package storage

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// maxNamePartBytes 파일명 중 사람이 읽는 부분의 최대 바이트 수
const maxNamePartBytes = 50

// unsafeCharReplacer 파일 시스템에서 문제가 되는 문자를 하이픈으로 치환합니다.
var unsafeCharReplacer = strings.NewReplacer(
	"..", "--",
	"/", "-",
	"\\", "-",
	"|", "-",
	"<", "-",
	">", "-",
	":", "-",
	"\"", "-",
	"?", "-",
	"*", "-",
)

// snapshotFilename 대상 ID로부터 "target-{kebab-id}-{16자리 해시}.json" 형식의 파일명을 만듭니다.
//
// 앞부분은 파일 탐색기에서 알아보기 위한 것이고, 고유성은 원본 ID의 FNV-64a 해시가 보장합니다.
// 정제 후 같은 이름이 되는 ID나 대소문자만 다른 ID도 해시로 구분됩니다.
func snapshotFilename(targetID string) string {
	name := truncateByBytes(sanitizeName(targetID), maxNamePartBytes)

	h := fnv.New64a()
	_, _ = h.Write([]byte(targetID))

	return fmt.Sprintf("target-%s-%016x.json", name, h.Sum64())
}

func sanitizeName(s string) string {
	kebab := strcase.ToKebab(s)

	// 제어 문자(0x00-0x1F, 0x7F)
	kebab = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return '-'
		}
		return r
	}, kebab)

	return unsafeCharReplacer.Replace(kebab)
}

// truncateByBytes 멀티바이트 문자가 중간에 잘리지 않도록 rune 경계에서 limit 바이트 이내로 자릅니다.
func truncateByBytes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	n := 0
	for n < len(s) {
		_, size := utf8.DecodeRuneInString(s[n:])
		if n+size > limit {
			break
		}
		n += size
	}

	return s[:n]
}

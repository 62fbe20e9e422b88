// Package strutil은 문자열 처리를 위한 유틸리티 함수들을 제공합니다.
package strutil

import "strings"

const maskSymbol = "***"

// Mask 로그 등에 노출되면 안 되는 민감 데이터를 마스킹합니다.
// 멀티바이트 문자가 깨지지 않도록 룬 단위로 자릅니다.
//
// 예: "abc" -> "***", "abcd" -> "abcd***", "123456789:ABCdefGHIjklMNOpqrsTUVwxyz" -> "1234***wxyz"
func Mask(data string) string {
	if data == "" {
		return ""
	}

	runes := []rune(data)

	// 3자 이하는 전체 마스킹
	if len(runes) <= 3 {
		return maskSymbol
	}

	// 12자 이하는 앞 4자만 표시
	if len(runes) <= 12 {
		return string(runes[:4]) + maskSymbol
	}

	var sb strings.Builder
	sb.Grow(len(data))
	sb.WriteString(string(runes[:4]))
	sb.WriteString(maskSymbol)
	sb.WriteString(string(runes[len(runes)-4:]))
	return sb.String()
}

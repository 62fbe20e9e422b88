// Package validation 설정값 검증에 사용하는 순수 함수들을 제공합니다.
package validation

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// RFC 1123 호스트명 레이블: 영문/숫자/하이픈, 1~63자, 하이픈으로 시작하거나 끝날 수 없음
var hostnameLabelRegexp = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

// ValidateCORSOrigin CORS Origin이 '*' 이거나 'Scheme://Host[:Port]' 형식인지 검증합니다.
// 스키마는 http/https만 허용하며 경로, 쿼리, 프래그먼트, 사용자 정보는 포함할 수 없습니다.
func ValidateCORSOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	if origin == "*" {
		return nil
	}
	if origin == "" {
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	}
	if strings.HasSuffix(origin, "/") {
		return fmt.Errorf("CORS Origin은 '/'로 끝날 수 없습니다 (input=%q)", origin)
	}

	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("CORS Origin이 유효한 URL 형식이 아닙니다 (input=%q): %w", origin, err)
	}

	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("CORS Origin 스키마는 'http' 또는 'https'만 허용됩니다 (input=%q)", origin)
	case u.Path != "" || u.RawQuery != "" || u.Fragment != "":
		return fmt.Errorf("CORS Origin은 경로, 쿼리, 프래그먼트를 포함할 수 없습니다 (input=%q)", origin)
	case u.User != nil:
		return fmt.Errorf("CORS Origin은 사용자 자격 증명을 포함할 수 없습니다 (input=%q)", origin)
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("CORS Origin 포트 번호가 유효하지 않습니다 (input=%q)", origin)
		}
		if err := ValidatePort(port); err != nil {
			return fmt.Errorf("CORS Origin 포트 오류: %w (input=%q)", err, origin)
		}
	}

	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("CORS Origin에 호스트가 없습니다 (input=%q)", origin)
	}

	return ValidateHostname(host)
}

// ValidatePort 포트 번호가 1~65535 범위인지 검증합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

// ValidateHostname localhost, IP 주소 또는 RFC 1123 호스트명인지 검증합니다.
func ValidateHostname(host string) error {
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}

	if len(host) > 253 {
		return fmt.Errorf("호스트명은 253자를 초과할 수 없습니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if !hostnameLabelRegexp.MatchString(label) {
			return fmt.Errorf("호스트명 레이블이 올바르지 않습니다 (label=%q, host=%q)", label, host)
		}
	}

	// 최상위 도메인은 숫자로만 구성될 수 없습니다.
	if _, err := strconv.Atoi(labels[len(labels)-1]); err == nil {
		return fmt.Errorf("최상위 도메인(TLD)은 숫자로만 구성될 수 없습니다 (host=%q)", host)
	}

	return nil
}

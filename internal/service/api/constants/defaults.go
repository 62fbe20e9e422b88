package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (60초)
	DefaultRequestTimeout = 60 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기 (128KB)
	DefaultMaxBodySize = "128K"

	// DefaultReadTimeout 요청 전체(헤더+본문) 읽기 최대 대기 시간
	DefaultReadTimeout = 30 * time.Second

	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간 (Slowloris 방어)
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultWriteTimeout 응답 쓰기 최대 대기 시간, 요청 타임아웃보다 길어야 합니다.
	DefaultWriteTimeout = DefaultRequestTimeout + 5*time.Second

	// DefaultIdleTimeout Keep-Alive 유휴 연결 유지 시간
	DefaultIdleTimeout = 120 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultRateLimitRequestsPerSecond IP당 초당 허용 요청 수
	DefaultRateLimitRequestsPerSecond = 20

	// DefaultRateLimitBurst IP당 순간 허용 요청 수
	DefaultRateLimitBurst = 40
)

package constants

// 카나리 엔드포인트 관련 상수입니다.
const (
	// CanaryResponseBody 두 카나리 엔드포인트가 공통으로 반환하는 응답 본문
	CanaryResponseBody = "요청 응답 성공"

	// CanaryConsoleVersion GET /canary 호출 시 콘솔에 출력되는 배포 버전 표식
	CanaryConsoleVersion = "version1"

	// CanaryConsoleLoopHeader GET /fisa1 호출 시 루프 출력 전에 콘솔에 출력되는 표식
	CanaryConsoleLoopHeader = "reqRes()"

	// CanaryConsoleLoopFormat 루프 카운터 출력 형식
	CanaryConsoleLoopFormat = "data 값%d"

	// CanaryLoopCount 루프 반복 횟수
	CanaryLoopCount = 10
)

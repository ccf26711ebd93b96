package eventbus

// 전역 토픽 선언: 기능별 기본 토픽 이름을 관리합니다.

var (
	// TopicBookingEvents 는 회원/예약/항공편 변경 이벤트가 발행되는 토픽이다.
	TopicBookingEvents = NewTopic("flight-booking.booking.events")
)

var AllTopics = []Topic{
	TopicBookingEvents,
}

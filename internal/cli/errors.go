package cli

import "fmt"

type flagError struct {
	flag   string
	value  string
	reason string
}

func (e flagError) Error() string {
	return fmt.Sprintf("invalid --%s %q: %s", e.flag, e.value, e.reason)
}

type unknownTopicError struct {
	topic string
}

func (e unknownTopicError) Error() string {
	return fmt.Sprintf("unknown docs topic: %q (run `epiccanvas docs` to list topics)", e.topic)
}

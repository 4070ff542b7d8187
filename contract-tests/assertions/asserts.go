package assertions

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	jsonPathInt "github.com/steinfletcher/apitest-jsonpath/jsonpath"
)

// HasFieldErrors asserts that the body maps every given field to a non-empty message.
func HasFieldErrors(fields ...string) func(response *http.Response, request *http.Request) error {
	return func(response *http.Response, request *http.Request) error {
		raw, err := io.ReadAll(response.Body)
		if err != nil {
			return err
		}
		for _, field := range fields {
			expression := "$." + field
			value, _ := jsonPathInt.JsonPath(bytes.NewReader(raw), expression)
			msg, ok := value.(string)
			if !ok || msg == "" {
				return fmt.Errorf("expected a message for field '%s', got '%v'", field, value)
			}
		}
		return nil
	}
}

// EmptyBody asserts that the response carries no payload.
func EmptyBody() func(response *http.Response, request *http.Request) error {
	return func(response *http.Response, request *http.Request) error {
		raw, err := io.ReadAll(response.Body)
		if err != nil {
			return err
		}
		if len(raw) != 0 {
			return fmt.Errorf("expected an empty body, got '%s'", raw)
		}
		return nil
	}
}

package command

// Response is the envelope returned to front ends: either Ok or Error is set.
type Response struct {
	ID    string `json:"id,omitempty"`
	Ok    any    `json:"ok,omitempty"`
	Error string `json:"error,omitempty"`
}

// Respond builds a Response from a command result.
func Respond(id string, value any, err error) Response {
	if err != nil {
		return Response{ID: id, Error: err.Error()}
	}
	return Response{ID: id, Ok: value}
}

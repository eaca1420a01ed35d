package bot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ingenious/othello/worker"
)

var ErrRemote = errors.New("remote worker error")

// Response is what a remote worker sends back for a job. Exactly one of
// Result and Error is set.
type Response struct {
	Result *worker.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func EncodeJob(job worker.Job) ([]byte, error) {
	return json.Marshal(job)
}

func DecodeJob(data []byte) (worker.Job, error) {
	var job worker.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return worker.Job{}, fmt.Errorf("decoding job: %w", err)
	}
	return job, nil
}

func errorResponse(message string, err error) Response {
	msg := message
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.Error())
	}
	return Response{Error: msg}
}

// DecodeResponse returns the result carried by data, or the remote error
// wrapped in ErrRemote.
func DecodeResponse(data []byte) (worker.Result, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return worker.Result{}, fmt.Errorf("decoding response: %w", err)
	}
	if resp.Error != "" {
		return worker.Result{}, fmt.Errorf("%w: %s", ErrRemote, resp.Error)
	}
	if resp.Result == nil {
		return worker.Result{}, fmt.Errorf("%w: empty response", ErrRemote)
	}
	return *resp.Result, nil
}

// Package binder decodes commands from HTTP requests.
//
// Commands travel as JSON bodies of PUT requests addressed by a client
// generated UUID, with a vendor media type naming the command:
//
//	PUT /commands/3f1c9a5e-7d2b-4b8e-9a61-2c4f0e6d8b17
//	Content-Type: application/vnd.createuser+json
//
//	{"Email":"jane@example.com","Name":"Jane"}
//
// Command returns a dispatch.Decoder that resolves the payload type through
// the command registry. Decoding failures are returned as *problem.Error
// values so the dispatcher renders them as problem documents:
//
//   - 400 for a malformed command id or body
//   - 413 for bodies exceeding the size limit
//   - 415 for a missing or non-command media type
//
// Clients build matching requests with NewRequest:
//
//	req, err := binder.NewRequest(ctx, baseURL, uuid.New(), CreateUser{Email: "jane@example.com"})
//	if err != nil {
//		return err
//	}
//	resp, err := http.DefaultClient.Do(req)
package binder

// Package problem implements RFC 7807 problem details for HTTP APIs together
// with a pluggable chain of converters that map Go errors to problem documents.
//
// A problem document always carries a numeric status and may carry a type URI,
// a title, a detail message, an instance URI and any number of extension
// members. Extension members are serialized next to the standard members in a
// single flat JSON object:
//
//	d := problem.New(http.StatusBadRequest).
//		WithType("https://example.com/probs/out-of-credit").
//		WithTitle("You do not have enough credit").
//		With("balance", 30)
//
//	// {"balance":30,"status":400,"title":"You do not have enough credit","type":"https://example.com/probs/out-of-credit"}
//
// # Raising problems from handlers
//
// Handlers return a *problem.Error to choose the exact response themselves:
//
//	return problem.AsError(problem.New(http.StatusConflict).WithDetail("email already taken"))
//
// Any error type may implement Provider to describe itself as a problem.
//
// # Converters
//
// A Converter inspects an error and either claims it by returning a document
// or declines it. Convert runs converters in order and the first one that
// claims the error wins. A converter that panics is treated as if it declined.
//
//	d, ok := problem.Convert(err,
//		problem.FromError,
//		problem.Match(func(e *ValidationError) problem.Details {
//			return problem.New(http.StatusUnprocessableEntity).WithDetail(e.Error())
//		}),
//		problem.Is(sql.ErrNoRows, problem.New(http.StatusNotFound)),
//	)
//
// Errors nobody claims should be reported with a generic document that does
// not include the error text.
package problem

// Package errors provides coded, categorized errors for Carbon.
//
// Each error has a unique code (e.g., "E101") that maps to a short message,
// a longer explanation, and a documentation link. Errors wrap the underlying
// cause so errors.Is and errors.As keep working:
//
//	err := errors.New("E101").Wrap(viewErr)
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: Host view rejected batch update
//	//
//	//   The view's item counts did not match the changeset. ...
//
// # Error Categories
//
//   - render: diff application and snapshot errors
//   - dispatch: action handling errors
//   - fixture: snapshot file errors
//   - cli: command line errors
package errors

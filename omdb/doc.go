// Package omdb is a client for the OMDb movie metadata API.
//
// Every operation issues a single GET request with the API key as the
// apikey query parameter, checks the provider's Response/Error envelope and
// maps the payload onto stable Go types. The provider marks absent values
// with "N/A"; those become nil pointers or nil slices. Numeric fields that do
// not parse also become nil instead of failing the call.
//
//	client, err := omdb.New(omdb.Config{APIKey: key, Timeout: 10 * time.Second})
//	if err != nil {
//		return err
//	}
//	hits, err := client.Search(ctx, "Star Wars", &omdb.SearchOptions{Type: omdb.TypeMovie, Page: omdb.Int(1)})
//
// Errors are *Error values; compare them with errors.Is against
// ErrConfiguration, ErrValidation, ErrProvider and ErrNetwork.
package omdb

// Package fetch downloads the cereal dataset from its source location and
// decodes it into a frame.
//
// The HTTP request is behind a FetchFunc strategy so tests can substitute an
// arbitrary dataset without touching the network:
//
//	loader, _ := fetch.New(fetch.Config{}, fetch.WithFetchFunc(
//	    func(ctx context.Context, url string) (io.ReadCloser, error) {
//	        return io.NopCloser(strings.NewReader(mockCSV)), nil
//	    },
//	))
//	f, err := loader.Load(ctx)
//
// Transport and decode failures surface as FETCH_FAILED errors with the
// underlying cause unmodified in the chain. There are no retries.
package fetch

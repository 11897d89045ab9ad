package curl

import "testing"

var simpleCommand = `curl https://api.example.com/v1/users`

var browserCommand = `curl 'https://www.example.com/api/search' \
  -H 'accept: */*' \
  -H 'accept-language: en-US,en;q=0.9' \
  -H 'content-type: application/json' \
  -H 'cookie: session=abc123; theme=dark' \
  --data-raw '{"q":"shoes","page":2,"filters":{"size":[9,10]}}' \
  --compressed`

func BenchmarkParse_Simple(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(simpleCommand); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_BrowserCopy(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(browserCommand); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Parallel(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := Parse(browserCommand); err != nil {
				b.Error(err)
				return
			}
		}
	})
}

func BenchmarkRender(b *testing.B) {
	req, err := Parse(browserCommand)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Render(req)
	}
}

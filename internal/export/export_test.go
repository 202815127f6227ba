package export

import (
	"strings"
	"testing"
)

func TestHTMLToText(t *testing.T) {
	in := `<html><head><title>chat</title><style>body{}</style></head>
<body>
<div>12/03/24, 9:15 pm - Arjun: semma scene bro</div>
<div>12/03/24, 9:16 pm - Bala: enna da<br>sollu</div>
<script>alert("x")</script>
</body></html>`

	got, err := HTMLToText(strings.NewReader(in))
	if err != nil {
		t.Fatalf("HTMLToText: %v", err)
	}

	want := "12/03/24, 9:15 pm - Arjun: semma scene bro\n12/03/24, 9:16 pm - Bala: enna da\nsollu"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestHTMLToTextSkipsHeadContent(t *testing.T) {
	got, err := HTMLToText(strings.NewReader(`<html><head><title>ignore me</title></head><body><p>keep</p></body></html>`))
	if err != nil {
		t.Fatalf("HTMLToText: %v", err)
	}
	if strings.Contains(got, "ignore me") {
		t.Errorf("head content leaked: %q", got)
	}
	if got != "keep" {
		t.Errorf("got %q, want keep", got)
	}
}

func TestHTMLToTextPlainText(t *testing.T) {
	// the html parser accepts bare text, wrapping it in a document
	got, err := HTMLToText(strings.NewReader("just a line"))
	if err != nil {
		t.Fatalf("HTMLToText: %v", err)
	}
	if got != "just a line" {
		t.Errorf("got %q", got)
	}
}

func TestHTMLToTextBlankLines(t *testing.T) {
	got, err := HTMLToText(strings.NewReader("<div>a</div><div></div><div>  </div><div>b</div>"))
	if err != nil {
		t.Fatalf("HTMLToText: %v", err)
	}
	if got != "a\nb" {
		t.Errorf("got %q, want a\\nb", got)
	}
}

// Package views 는 서버 렌더링 화면의 템플릿과 정적 파일을 바이너리에 포함한다.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	displayLayout = "2006-01-02 15:04"
	inputLayout   = "2006-01-02T15:04"
)

// Funcs 는 템플릿에서 쓰는 헬퍼 함수다.
var Funcs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format(displayLayout)
	},
	"inputTime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format(inputLayout)
	},
	"pageURL": PageURL,
	"deref": func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	},
}

// PageURL 은 현재 검색 조건을 유지한 채 page 만 바꾼 링크를 만든다.
func PageURL(path, rawQuery string, page int) string {
	q, _ := url.ParseQuery(rawQuery)
	q.Set("page", strconv.Itoa(page))
	return path + "?" + q.Encode()
}

// Templates 는 포함된 모든 템플릿을 파싱한다.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
}

// Static 은 /static 으로 서빙할 파일 시스템이다.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

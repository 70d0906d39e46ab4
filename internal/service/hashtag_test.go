package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHashtags(t *testing.T) {
	cases := []struct {
		content string
		want    []string
	}{
		{"no tags here", nil},
		{"#a #b", []string{"#a", "#b"}},
		{"hello #World and #world again", []string{"#World", "#world"}},
		// 单独的 # 产出空标签
		{"#", []string{"#"}},
		{"## a", []string{"#", "#"}},
		{"##a", []string{"#", "#a"}},
		// 词中间的 # 也算
		{"hello#World", []string{"#World"}},
		{"#a#b", []string{"#a", "#b"}},
		{"#한글 #中文", []string{"#한글", "#中文"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractHashtags(tc.content), "content=%q", tc.content)
	}
}

func TestNormalizeHashtag(t *testing.T) {
	assert.Equal(t, "foo", NormalizeHashtag("#Foo"))
	assert.Equal(t, "foo", NormalizeHashtag("foo"))
	assert.Equal(t, "", NormalizeHashtag("#"))

	// 幂等
	for _, x := range []string{"#Foo", "##Bar", "baz", ""} {
		once := NormalizeHashtag(x)
		assert.Equal(t, once, NormalizeHashtag(once))
	}
}

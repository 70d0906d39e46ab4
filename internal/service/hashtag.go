package service

import (
	"strings"
	"unicode"
)

// ExtractHashtags 从正文中左到右扫描标签 token。
// token 形如 #<body>，body 是零个或多个非空白、非 # 的字符；
// 也就是说单独的 "#" 会产出空标签，"##a" 产出 "" 和 "a" 两个 token。
// 这里用显式扫描而不是正则，避免依赖正则库对零宽匹配的具体语义。
func ExtractHashtags(content string) []string {
	var tokens []string
	runes := []rune(content)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '#' {
			continue
		}
		j := i + 1
		for j < len(runes) && runes[j] != '#' && !unicode.IsSpace(runes[j]) {
			j++
		}
		tokens = append(tokens, string(runes[i:j]))
		i = j - 1
	}
	return tokens
}

// NormalizeHashtag 去掉前导 # 并转小写。幂等：对已规范化的文本不再变化。
func NormalizeHashtag(token string) string {
	return strings.ToLower(strings.TrimLeft(token, "#"))
}

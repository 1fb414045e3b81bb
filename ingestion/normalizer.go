package ingestion

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// languageAliases maps cleaned, lower-cased names of languages, frameworks and
// runtimes to the canonical language name stored in the catalog. Every
// canonical name is also a key so that normalizing twice is a no-op.
var languageAliases = map[string]string{
	// JavaScript
	"javascript": "JavaScript", "js": "JavaScript", "ecmascript": "JavaScript", "es6": "JavaScript",
	"react": "JavaScript", "reactjs": "JavaScript", "react.js": "JavaScript", "react native": "JavaScript",
	"next": "JavaScript", "nextjs": "JavaScript", "next.js": "JavaScript",
	"node": "JavaScript", "nodejs": "JavaScript", "node.js": "JavaScript",
	"express": "JavaScript", "expressjs": "JavaScript", "express.js": "JavaScript",
	"vue": "JavaScript", "vuejs": "JavaScript", "vue.js": "JavaScript", "nuxt": "JavaScript", "nuxtjs": "JavaScript",
	"angular": "JavaScript", "angularjs": "JavaScript", "svelte": "JavaScript", "sveltekit": "JavaScript",
	"jquery": "JavaScript", "electron": "JavaScript", "three.js": "JavaScript", "threejs": "JavaScript",
	"d3": "JavaScript", "d3.js": "JavaScript", "socket.io": "JavaScript", "nestjs": "JavaScript",

	// TypeScript
	"typescript": "TypeScript", "ts": "TypeScript", "deno": "TypeScript",

	// Python
	"python": "Python", "python3": "Python", "py": "Python",
	"django": "Python", "flask": "Python", "fastapi": "Python", "pandas": "Python", "numpy": "Python",
	"pytorch": "Python", "tensorflow": "Python", "scikit-learn": "Python", "sklearn": "Python",
	"jupyter": "Python", "streamlit": "Python", "pygame": "Python",

	// Java
	"java": "Java", "spring": "Java", "spring boot": "Java", "springboot": "Java",
	"hibernate": "Java", "maven": "Java", "gradle": "Java",

	// Kotlin
	"kotlin": "Kotlin", "ktor": "Kotlin", "jetpack compose": "Kotlin",

	// Ruby
	"ruby": "Ruby", "rails": "Ruby", "ruby on rails": "Ruby", "ror": "Ruby", "sinatra": "Ruby",

	// Go
	"go": "Go", "golang": "Go", "gin": "Go", "echo": "Go", "fiber": "Go",

	// C#
	"c#": "C#", "csharp": "C#", "c sharp": "C#", "dotnet": "C#", ".net": "C#", "asp.net": "C#",
	"asp.net core": "C#", ".net core": "C#", "unity": "C#", "blazor": "C#",

	// C / C++
	"c":   "C",
	"c++": "C++", "cpp": "C++", "cplusplus": "C++", "unreal": "C++", "unreal engine": "C++", "qt": "C++",

	// Rust
	"rust": "Rust", "actix": "Rust", "tokio": "Rust", "rocket": "Rust",

	// PHP
	"php": "PHP", "laravel": "PHP", "symfony": "PHP", "wordpress": "PHP",

	// Swift / Objective-C
	"swift": "Swift", "swiftui": "Swift", "ios": "Swift", "vapor": "Swift",
	"objective-c": "Objective-C", "objc": "Objective-C", "objective c": "Objective-C",

	// Dart
	"dart": "Dart", "flutter": "Dart",

	// Scala / Elixir / Haskell / Clojure / Erlang
	"scala": "Scala", "akka": "Scala", "play framework": "Scala",
	"elixir": "Elixir", "phoenix": "Elixir",
	"haskell": "Haskell",
	"clojure": "Clojure", "clojurescript": "Clojure",
	"erlang": "Erlang",

	// R / Julia / MATLAB
	"r": "R", "rstudio": "R", "shiny": "R",
	"julia":  "Julia",
	"matlab": "MATLAB",

	// Lua / Perl / Shell
	"lua": "Lua", "love2d": "Lua",
	"perl":  "Perl",
	"shell": "Shell", "bash": "Shell", "sh": "Shell", "zsh": "Shell", "powershell": "Shell",

	// SQL
	"sql": "SQL", "postgres": "SQL", "postgresql": "SQL", "mysql": "SQL", "sqlite": "SQL",
	"mariadb": "SQL", "t-sql": "SQL", "pl/sql": "SQL", "sql server": "SQL",

	// HTML / CSS
	"html": "HTML", "html5": "HTML",
	"css": "CSS", "css3": "CSS", "sass": "CSS", "scss": "CSS", "less": "CSS",
	"tailwind": "CSS", "tailwindcss": "CSS", "bootstrap": "CSS",

	// Solidity
	"solidity": "Solidity", "ethereum": "Solidity",
}

// CleanLanguageName applies the cleaning steps of NormalizeLanguage without the
// alias lookup.
func CleanLanguageName(raw string) string {
	s := strings.TrimSpace(strings.ToLower(raw))
	s = strings.ReplaceAll(s, "**", "")
	s = strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', '[', ']', '{', '}', '`':
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeLanguage maps a free-text language or framework name to a canonical
// language name. It returns "" when nothing is left after cleaning. Names
// without an alias come back with their first letter upper-cased and will
// usually not match the catalog.
func NormalizeLanguage(raw string) string {
	cleaned := CleanLanguageName(raw)
	if cleaned == "" {
		return ""
	}
	if canonical, ok := languageAliases[cleaned]; ok {
		return canonical
	}
	return capitalizeFirst(cleaned)
}

// NormalizeLanguageValue is NormalizeLanguage for untyped proposal values.
// Non-string values report false.
func NormalizeLanguageValue(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	name := NormalizeLanguage(s)
	return name, name != ""
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

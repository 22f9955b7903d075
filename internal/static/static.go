package static

import _ "embed"

// ConsoleHTML contains the console page template. It carries a single
// time placeholder that the page package substitutes per request.
//
//go:embed console.html
var ConsoleHTML string

// ProfileTXT contains the profile block typed out by the console, with the
// same time placeholder. The page script embeds an identical copy.
//
//go:embed profile.txt
var ProfileTXT string

package font

// small holds 3x5 glyphs, one octal digit per row from top to bottom with the
// most significant bit leftmost.
var small = map[byte]string{
	' ': "00000", '!': "22202", '"': "55000", '#': "57575",
	'$': "36236", '%': "51245", '&': "25253", '\'': "22000",
	'(': "12221", ')': "42224", '*': "05250", '+': "02720",
	',': "00024", '-': "00700", '.': "00002", '/': "11244",
	'0': "75557", '1': "26227", '2': "71747", '3': "71317",
	'4': "55711", '5': "74717", '6': "74757", '7': "71111",
	'8': "75757", '9': "75717", ':': "02020", ';': "02024",
	'<': "12421", '=': "07070", '>': "42124", '?': "71202",
	'@': "25743", 'A': "25755", 'B': "65656", 'C': "34443",
	'D': "65556", 'E': "74647", 'F': "74644", 'G': "34553",
	'H': "55755", 'I': "72227", 'J': "11153", 'K': "55655",
	'L': "44447", 'M': "57755", 'N': "65555", 'O': "25552",
	'P': "65644", 'Q': "25573", 'R': "65655", 'S': "34216",
	'T': "72222", 'U': "55557", 'V': "55552", 'W': "55775",
	'X': "55255", 'Y': "55222", 'Z': "71247", '[': "64446",
	'\\': "44211", ']': "32223", '^': "25000", '_': "00007",
	'`': "42000", 'a': "03553", 'b': "44656", 'c': "00343",
	'd': "11353", 'e': "03743", 'f': "12722", 'g': "03536",
	'h': "44655", 'i': "20222", 'j': "10116", 'k': "44565",
	'l': "62227", 'm': "00775", 'n': "00655", 'o': "00252",
	'p': "06564", 'q': "03531", 'r': "00644", 's': "00326",
	't': "27221", 'u': "00557", 'v': "00552", 'w': "00577",
	'x': "00525", 'y': "05316", 'z': "07247", '{': "32623",
	'|': "22222", '}': "62326", '~': "06300", Missing: "77777",
}

func smallGlyph(c byte, x, y int) bool {
	rows, ok := small[c]
	if !ok {
		rows = small[Missing]
	}
	if x >= 3 || y >= len(rows) {
		return false
	}
	return (rows[y]-'0')&(4>>uint(x)) != 0
}

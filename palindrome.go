package orbitals

// IsPerfectPalindrome reports whether word, normalized to letters, reads
// the same forwards and backwards. Nothing is stripped: spaces and letters
// outside any alphabet take part in the comparison. The empty word is not
// a palindrome.
func IsPerfectPalindrome(word string) bool {
	return isPalindrome(Letters(word))
}

func isPalindrome(letters []string) bool {
	if len(letters) == 0 {
		return false
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		if letters[i] != letters[j] {
			return false
		}
	}
	return true
}

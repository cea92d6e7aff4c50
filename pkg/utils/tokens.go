package utils

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// encoding is resolved once; the first call may download the BPE ranks.
var encoding = sync.OnceValues(func() (*tiktoken.Tiktoken, error) {
	return tiktoken.EncodingForModel("gpt-4-0613")
})

func NumTokensFromMessages(text string) (int, error) {
	tkm, err := encoding()
	if err != nil {
		return 0, err
	}

	return len(tkm.Encode(text, nil, nil)), nil
}

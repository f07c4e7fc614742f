package token

type tokenOpts struct {
	comments bool
}

type TokenOpt func(*tokenOpts)

// TokenComments keeps comment tokens in the output instead of dropping them.
func TokenComments(v bool) TokenOpt {
	return func(o *tokenOpts) { o.comments = v }
}

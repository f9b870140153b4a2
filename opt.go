package prism

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which can set options on a knowledge creation or
// reply request
type Opt func(*Opts) error

// set of options. Optional request fields are held as pointers so that an
// option which was never supplied is omitted from the request body, rather
// than sent as a zero value.
type Opts struct {
	// Knowledge creation
	url          string
	text         string
	recursion    bool
	maxRecursion *uint
	onlyBaseURL  bool

	// Reply
	conversation  *int64
	knowledgeBase string
	maxTokens     *uint
	numResults    *uint
	model         string
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ApplyOpts returns a structure of applied options
func ApplyOpts(opts ...Opt) (*Opts, error) {
	o := new(Opts)
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS - KNOWLEDGE

// WithURL sets the source URL for knowledge created with the "url" method
func WithURL(url string) Opt {
	return func(o *Opts) error {
		o.url = url
		return nil
	}
}

// WithText sets the source text for knowledge created with the "text" method
func WithText(text string) Opt {
	return func(o *Opts) error {
		o.text = text
		return nil
	}
}

// WithRecursion enables crawling of pages linked from the source URL
func WithRecursion() Opt {
	return func(o *Opts) error {
		o.recursion = true
		return nil
	}
}

// WithMaxRecursion sets the maximum crawl depth
func WithMaxRecursion(depth uint) Opt {
	return func(o *Opts) error {
		if depth == 0 {
			return ErrBadParameter.With("recursion depth must be at least 1")
		}
		o.maxRecursion = &depth
		return nil
	}
}

// WithOnlyBaseURL restricts the crawl to the origin of the source URL
func WithOnlyBaseURL() Opt {
	return func(o *Opts) error {
		o.onlyBaseURL = true
		return nil
	}
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS - REPLY

// WithConversation scopes the reply to an existing conversation
func WithConversation(id int64) Opt {
	return func(o *Opts) error {
		o.conversation = &id
		return nil
	}
}

// WithKnowledgeBase scopes the reply to a named knowledge base
func WithKnowledgeBase(name string) Opt {
	return func(o *Opts) error {
		o.knowledgeBase = name
		return nil
	}
}

// WithMaxTokens sets the maximum number of tokens to generate (minimum 1)
func WithMaxTokens(value uint) Opt {
	return func(o *Opts) error {
		if value < 1 {
			return ErrBadParameter.With("max tokens must be at least 1")
		}
		o.maxTokens = &value
		return nil
	}
}

// WithNumResults sets the number of knowledge results used for the reply
func WithNumResults(value uint) Opt {
	return func(o *Opts) error {
		if value < 1 {
			return ErrBadParameter.With("number of results must be at least 1")
		}
		o.numResults = &value
		return nil
	}
}

// WithModel sets the model used to generate the reply
func WithModel(name string) Opt {
	return func(o *Opts) error {
		o.model = name
		return nil
	}
}

package prism

import (
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_opt_001(t *testing.T) {
	assert := assert.New(t)

	// No options leaves every optional field absent
	opt, err := ApplyOpts()
	assert.NoError(err)
	assert.Empty(opt.url)
	assert.Empty(opt.text)
	assert.False(opt.recursion)
	assert.Nil(opt.maxRecursion)
	assert.False(opt.onlyBaseURL)
	assert.Nil(opt.conversation)
	assert.Empty(opt.knowledgeBase)
	assert.Nil(opt.maxTokens)
	assert.Nil(opt.numResults)
	assert.Empty(opt.model)
}

func Test_opt_002(t *testing.T) {
	assert := assert.New(t)

	opt, err := ApplyOpts(
		WithURL("https://example.com"),
		WithRecursion(),
		WithMaxRecursion(2),
		WithOnlyBaseURL(),
	)
	assert.NoError(err)
	assert.Equal("https://example.com", opt.url)
	assert.True(opt.recursion)
	if assert.NotNil(opt.maxRecursion) {
		assert.Equal(uint(2), *opt.maxRecursion)
	}
	assert.True(opt.onlyBaseURL)
}

func Test_opt_003(t *testing.T) {
	assert := assert.New(t)

	opt, err := ApplyOpts(
		WithConversation(-3),
		WithKnowledgeBase("docs"),
		WithMaxTokens(100),
		WithNumResults(5),
		WithModel("gpt-test"),
	)
	assert.NoError(err)
	if assert.NotNil(opt.conversation) {
		assert.Equal(int64(-3), *opt.conversation)
	}
	assert.Equal("docs", opt.knowledgeBase)
	if assert.NotNil(opt.maxTokens) {
		assert.Equal(uint(100), *opt.maxTokens)
	}
	if assert.NotNil(opt.numResults) {
		assert.Equal(uint(5), *opt.numResults)
	}
	assert.Equal("gpt-test", opt.model)
}

func Test_opt_004(t *testing.T) {
	assert := assert.New(t)

	// Out-of-range values are rejected when the option is applied
	_, err := ApplyOpts(WithMaxTokens(0))
	assert.ErrorIs(err, ErrBadParameter)

	_, err = ApplyOpts(WithNumResults(0))
	assert.ErrorIs(err, ErrBadParameter)

	_, err = ApplyOpts(WithMaxRecursion(0))
	assert.ErrorIs(err, ErrBadParameter)
}

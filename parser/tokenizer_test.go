package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenizerMatchTestcase struct {
	in      string
	matches []match
}

var tokenizerMatchTests = []tokenizerMatchTestcase{
	{"a<b>", []match{
		{kind: startTagOpenMatch, start: 1, end: 3, name: "b"},
		{kind: tagCloseMatch, start: 3, end: 4},
	}},
	{"<div class=x/>", []match{
		{kind: startTagOpenMatch, start: 0, end: 4, name: "div"},
		{kind: selfCloseMatch, start: 12, end: 14},
	}},
	{"</div>", []match{
		{kind: endTagMatch, start: 0, end: 6, name: "div"},
	}},
	{"</div   >", []match{
		{kind: endTagMatch, start: 0, end: 9, name: "div"},
	}},
	// "</ div>" has no name after the solidus, so only the bare
	// terminator registers.
	{"</ div>", []match{
		{kind: tagCloseMatch, start: 6, end: 7},
	}},
	{"<!--x-->", []match{
		{kind: commentMatch, start: 0, end: 8, text: "x"},
	}},
	{"<!--x--!>tail", []match{
		{kind: commentMatch, start: 0, end: 9, text: "x"},
	}},
	{"<!--never closed", []match{
		{kind: commentMatch, start: 0, end: 16, text: "never closed"},
	}},
	{"<!DOCTYPE html>", []match{
		{kind: declarationMatch, start: 0, end: 15, text: "DOCTYPE html"},
	}},
	{`<?xml version="1.0"?>`, []match{
		{kind: procInstMatch, start: 0, end: 21, name: "xml", text: ` version="1.0"`},
	}},
	{"<?php echo 1 >", []match{
		{kind: procInstMatch, start: 0, end: 14, name: "php", text: " echo 1 "},
	}},
	// A "<" followed by whitespace or another non-name byte is plain
	// text; the stray ">" still matches as a terminator.
	{"a < b > c", []match{
		{kind: tagCloseMatch, start: 6, end: 7},
	}},
	{"1 /> 2", []match{
		{kind: selfCloseMatch, start: 2, end: 4},
	}},
	{"no markup at all", nil},
}

func TestTokenizerMatches(t *testing.T) {
	for _, tt := range tokenizerMatchTests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			tok := newTokenizer(tt.in)
			var got []match
			pos := 0
			for {
				m, ok := tok.next(pos)
				if !ok {
					break
				}
				got = append(got, m)
				pos = m.end
			}
			assert.Equal(t, tt.matches, got)
		})
	}
}

type attributeScanTestcase struct {
	in    string // a start tag's interior, between the name and the terminator
	attrs []attribute
}

var attributeScanTests = []attributeScanTestcase{
	{"", nil},
	{" src='123' onload='test'", []attribute{
		{name: "src", value: "123"},
		{name: "onload", value: "test"},
	}},
	{` href="https://example.com" onclick='alert(1)'`, []attribute{
		{name: "href", value: "https://example.com"},
		{name: "onclick", value: "alert(1)"},
	}},
	{" src=123 onload=test", []attribute{
		{name: "src", value: "123"},
		{name: "onload", value: "test"},
	}},
	{" src='123' onload='test' ", []attribute{
		{name: "src", value: "123"},
		{name: "onload", value: "test"},
	}},
	// A leading "=" cannot start a name and is skipped.
	{" =src='123'onload='test'", []attribute{
		{name: "src", value: "123"},
		{name: "onload", value: "test"},
	}},
	{" src", []attribute{
		{name: "src"},
	}},
	{" src test", []attribute{
		{name: "src"},
		{name: "test"},
	}},
	{" 'asd", []attribute{
		{name: "'asd"},
	}},
	{" ABC=123", []attribute{
		{name: "abc", value: "123"},
	}},
	{" abc=", []attribute{
		{name: "abc"},
	}},
	{"\tabc=123", []attribute{
		{name: "abc", value: "123"},
	}},
	{" a = '1'  b =2", []attribute{
		{name: "a", value: "1"},
		{name: "b", value: "2"},
	}},
	{" a='unterminated", []attribute{
		{name: "a", value: "unterminated"},
	}},
	{" / checked", []attribute{
		{name: "checked"},
	}},
}

func TestScanAttributes(t *testing.T) {
	for _, tt := range attributeScanTests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.attrs, scanAttributes(tt.in))
		})
	}
}

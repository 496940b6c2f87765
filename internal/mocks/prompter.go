// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Code generated manually for testing. Update as needed.

package mocks

import (
	"github.com/stretchr/testify/mock"
)

// Prompter is a mock implementation of prompts.Prompter
type Prompter struct {
	mock.Mock
}

func (m *Prompter) CaptureYesNo(promptStr string) (bool, error) {
	args := m.Called(promptStr)
	return args.Bool(0), args.Error(1)
}

func (m *Prompter) CaptureList(promptStr string, options []string) (string, error) {
	args := m.Called(promptStr, options)
	return args.String(0), args.Error(1)
}

func (m *Prompter) CaptureString(promptStr string) (string, error) {
	args := m.Called(promptStr)
	return args.String(0), args.Error(1)
}

func (m *Prompter) CaptureValidatedString(promptStr string, validator func(string) error) (string, error) {
	args := m.Called(promptStr, validator)
	return args.String(0), args.Error(1)
}

func (m *Prompter) CaptureExistingFilepath(promptStr string) (string, error) {
	args := m.Called(promptStr)
	return args.String(0), args.Error(1)
}

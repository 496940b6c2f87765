// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"github.com/manifoldco/promptui"
)

const (
	Yes = "Yes"
	No  = "No"
)

type Prompter interface {
	CaptureYesNo(promptStr string) (bool, error)
	CaptureList(promptStr string, options []string) (string, error)
	CaptureString(promptStr string) (string, error)
	CaptureValidatedString(promptStr string, validator func(string) error) (string, error)
	CaptureExistingFilepath(promptStr string) (string, error)
}

type realPrompter struct{}

// Global variable that can be replaced during testing
var promptUIRunner = func(prompt promptui.Prompt) (string, error) {
	return prompt.Run()
}

// Global variable for Select operations that can be replaced during testing
var promptUISelectRunner = func(prompt promptui.Select) (int, string, error) {
	return prompt.Run()
}

func NewPrompter() Prompter {
	return &realPrompter{}
}

func yesNoBase(promptStr string, orderedOptions []string) (bool, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: orderedOptions,
	}

	_, decision, err := promptUISelectRunner(prompt)
	if err != nil {
		return false, err
	}
	return decision == Yes, nil
}

func (*realPrompter) CaptureYesNo(promptStr string) (bool, error) {
	return yesNoBase(promptStr, []string{Yes, No})
}

func (*realPrompter) CaptureList(promptStr string, options []string) (string, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: options,
	}
	_, listDecision, err := promptUISelectRunner(prompt)
	if err != nil {
		return "", err
	}
	return listDecision, nil
}

func (*realPrompter) CaptureString(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Validate: validateNonEmpty,
	}

	str, err := promptUIRunner(prompt)
	if err != nil {
		return "", err
	}

	return str, nil
}

func (*realPrompter) CaptureValidatedString(promptStr string, validator func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Validate: validator,
	}

	str, err := promptUIRunner(prompt)
	if err != nil {
		return "", err
	}

	return str, nil
}

func (*realPrompter) CaptureExistingFilepath(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Validate: validateExistingFilepath,
	}

	pathStr, err := promptUIRunner(prompt)
	if err != nil {
		return "", err
	}

	return pathStr, nil
}

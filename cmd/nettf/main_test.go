package main

import (
	"strings"
	"testing"

	"github.com/nettf/nettf/internal/logx"
)

func Test_RunDiscover_RejectsNonPositiveTimeout(t *testing.T) {
	err := runDiscover([]string{"--timeout", "0"}, logx.Discard)
	if err == nil || !strings.Contains(err.Error(), "positive") {
		t.Fatalf("expected a positive-timeout error, got %v", err)
	}
}

func Test_RunSend_RejectsWrongArgCount(t *testing.T) {
	if err := runSend([]string{"only-one-arg"}, logx.Discard); err == nil {
		t.Fatal("expected an error for too few arguments")
	}
	if err := runSend([]string{"a", "b", "c", "d"}, logx.Discard); err == nil {
		t.Fatal("expected an error for too many arguments")
	}
}

func Test_RunSend_RejectsInvalidIP(t *testing.T) {
	err := runSend([]string{"not-an-ip", "/tmp"}, logx.Discard)
	if err == nil || !strings.Contains(err.Error(), "invalid IPv4") {
		t.Fatalf("expected an invalid-IP error, got %v", err)
	}
}

func Test_RunReceive_RejectsArguments(t *testing.T) {
	if err := runReceive([]string{"unexpected"}, logx.Discard); err == nil {
		t.Fatal("expected an error for unexpected arguments")
	}
}

package cmd

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/psantana5/slurmgen/pkg/jobspec"
)

func TestApplyConfigDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set("account", "e781")
	viper.Set("partition", "debug")
	viper.Set("qos", "lowpriority")
	viper.Set("mail_user", "user@example.com")

	spec := jobspec.Default()
	spec.Header.Partition = ""
	spec.Header.QOS = ""

	applyConfigDefaults(&spec)

	if spec.Header.Account != "e781" {
		t.Errorf("account = %q, want e781", spec.Header.Account)
	}
	if spec.Header.Partition != "debug" {
		t.Errorf("partition = %q, want debug", spec.Header.Partition)
	}
	if spec.Header.QOS != "lowpriority" {
		t.Errorf("qos = %q, want lowpriority", spec.Header.QOS)
	}
	if spec.Header.MailUser != "user@example.com" {
		t.Errorf("mail_user = %q, want user@example.com", spec.Header.MailUser)
	}
}

func TestApplyConfigDefaultsKeepsSpecValues(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set("account", "other")
	viper.Set("partition", "debug")
	viper.Set("qos", "lowpriority")
	viper.Set("mail_user", "other@example.com")

	spec := jobspec.Default()
	spec.Header.Account = "e781"
	spec.Header.MailUser = "user@example.com"

	applyConfigDefaults(&spec)

	if spec.Header.Account != "e781" {
		t.Errorf("account = %q, want the spec value e781", spec.Header.Account)
	}
	if spec.Header.Partition != "standard" {
		t.Errorf("partition = %q, want the declared default standard", spec.Header.Partition)
	}
	if spec.Header.QOS != "standard" {
		t.Errorf("qos = %q, want the declared default standard", spec.Header.QOS)
	}
	if spec.Header.MailUser != "user@example.com" {
		t.Errorf("mail_user = %q, want the spec value user@example.com", spec.Header.MailUser)
	}
}

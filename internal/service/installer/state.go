package installer

import (
	"fmt"
	"sort"
	"strings"
)

const (
	keyProvider       = "OUTFIT_LLM_PROVIDER"
	keyModel          = "OUTFIT_LLM_MODEL"
	keyChannel        = "OUTFIT_CHAT_CHANNEL"
	keyDefaultCity    = "OUTFIT_DEFAULT_CITY"
	keyTelegramToken  = "OUTFIT_TELEGRAM_TOKEN"
	keyTelegramOwner  = "OUTFIT_TELEGRAM_OWNER_ID"
	keyEnableTelegram = "OUTFIT_ENABLE_TELEGRAM"
	keyEnableCLI      = "OUTFIT_ENABLE_CLI"
	keyEnableHTTP     = "OUTFIT_ENABLE_HTTP"
	keyDebug          = "OUTFIT_DEBUG"
)

type InstallState struct {
	EnvVars map[string]string
}

func NewInstallState() *InstallState {
	return &InstallState{
		EnvVars: make(map[string]string),
	}
}

func (s *InstallState) Provider() string {
	return strings.ToLower(s.EnvVars[keyProvider])
}

func (s *InstallState) Channel() string {
	return strings.ToLower(s.EnvVars[keyChannel])
}

// Summary lists the collected settings, one per line, with secrets masked.
func (s *InstallState) Summary() string {
	keys := make([]string, 0, len(s.EnvVars))
	for k := range s.EnvVars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, mask(k, s.EnvVars[k]))
	}
	return b.String()
}

func mask(key, value string) string {
	if !strings.HasSuffix(key, "_API_KEY") && !strings.HasSuffix(key, "_TOKEN") {
		return value
	}
	if len(value) <= 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}

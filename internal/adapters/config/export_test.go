package config

// GitProxyFrom exposes gitProxyFrom for tests.
var GitProxyFrom = gitProxyFrom

package service

import "github.com/promptandpause/promptandpause-sub003/internal/platform/config"

func configFor(prefix string) config.Conf { return config.New().Prefix(prefix) }

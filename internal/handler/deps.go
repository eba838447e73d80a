package handler

import (
	"vclassroom/internal/app/classroom"
	"vclassroom/internal/configs"
)

type AppDeps struct {
	Manager *classroom.Manager
	Config  *configs.AppConfig
}

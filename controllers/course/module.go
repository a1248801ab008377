package courseController

import (
	"coursehub/middleware"
	courseService "coursehub/services/course"
	enrollmentService "coursehub/services/enrollment"
	courseValidator "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

func toModuleInput(r *courseValidator.ModuleRequest) courseService.ModuleInput {
	return courseService.ModuleInput{
		Title:    r.Title,
		Type:     r.Kind(),
		Content:  r.Content,
		Order:    r.Order,
		Duration: r.Duration,
	}
}

func AddModule(c *fiber.Ctx) error {
	reqData := c.Locals("validatedModule").(*courseValidator.ModuleRequest)

	module, err := courseService.AddModule(middleware.DB(c), middleware.CurrentUser(c), c.Params("slug"), toModuleInput(reqData))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

func GetModule(c *fiber.Ctx) error {
	module, err := courseService.GetModule(middleware.DB(c), middleware.CurrentUser(c), c.Locals("moduleId").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", module)
}

func UpdateModule(c *fiber.Ctx) error {
	reqData := c.Locals("validatedModule").(*courseValidator.ModuleRequest)

	module, err := courseService.UpdateModule(middleware.DB(c), middleware.CurrentUser(c), c.Locals("moduleId").(uint), toModuleInput(reqData))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

func DeleteModule(c *fiber.Ctx) error {
	if err := courseService.DeleteModule(middleware.DB(c), middleware.CurrentUser(c), c.Locals("moduleId").(uint)); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

func CompleteModule(c *fiber.Ctx) error {
	progress, err := enrollmentService.CompleteModule(middleware.DB(c), middleware.CurrentUser(c), c.Locals("moduleId").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated!", progress)
}

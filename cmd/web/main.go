// @title           droppcv API
// @version         1.0
// @description     API биржи вакансий: соискатели, работодатели, поиск.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "droppcv_backend/internal/app"

func main() {
	app.Run()
}

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pac-cee/mongocli/internal/cli"
	"github.com/pac-cee/mongocli/internal/repository/mongodb"
	"github.com/pac-cee/mongocli/internal/service"
	"github.com/pac-cee/mongocli/internal/storage"
)

func init() {
	rootCmd.AddCommand(
		appCmd("banking", "Banking app", "bankingAppDB", bankingMenu),
		appCmd("blog", "Blog platform", "blogPlatformDB", blogMenu),
		appCmd("contacts", "Contact book", "contactBookDB", contactsMenu),
		appCmd("analytics", "E-commerce analytics", "ecommerceAnalyticsDB", analyticsMenu),
		appCmd("inventory", "Inventory system", "inventorySystemDB", inventoryMenu),
		appCmd("library", "Library management", "libraryManagementDB", libraryMenu),
		appCmd("notes", "Notes app", "notesAppDB", notesMenu),
		appCmd("social", "Social network", "socialNetworkDB", socialMenu),
		appCmd("reservations", "Restaurant reservations", "restaurantReservationDB", reservationsMenu),
		appCmd("students", "Student management", "studentManagementDB", studentsMenu),
		appCmd("tasks", "Task manager", "taskManagerDB", tasksMenu),
	)
}

func appCmd(use, short, defaultDB string, build menuBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd, defaultDB, build)
		},
	}
}

func bankingMenu(_ context.Context, cl *storage.Client) (*cli.Menu, error) {
	return cli.BankingMenu(service.NewBanking(mongodb.NewAccountRepo(cl))), nil
}

func blogMenu(_ context.Context, cl *storage.Client) (*cli.Menu, error) {
	svc := service.NewBlog(mongodb.NewAuthorRepo(cl), mongodb.NewPostRepo(cl))
	return cli.BlogMenu(svc), nil
}

func contactsMenu(ctx context.Context, cl *storage.Client) (*cli.Menu, error) {
	contacts := mongodb.NewContactRepo(cl)
	if err := contacts.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	return cli.ContactsMenu(service.NewContacts(contacts)), nil
}

func analyticsMenu(_ context.Context, cl *storage.Client) (*cli.Menu, error) {
	return cli.AnalyticsMenu(service.NewAnalytics(mongodb.NewOrderRepo(cl))), nil
}

func inventoryMenu(_ context.Context, cl *storage.Client) (*cli.Menu, error) {
	return cli.InventoryMenu(service.NewInventory(mongodb.NewProductRepo(cl))), nil
}

func libraryMenu(ctx context.Context, cl *storage.Client) (*cli.Menu, error) {
	books := mongodb.NewBookRepo(cl)
	if err := books.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	return cli.LibraryMenu(service.NewLibrary(books)), nil
}

func notesMenu(ctx context.Context, cl *storage.Client) (*cli.Menu, error) {
	users := mongodb.NewNoteUserRepo(cl)
	if err := users.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	return cli.NotesMenu(service.NewNotes(users, mongodb.NewNoteRepo(cl))), nil
}

func socialMenu(ctx context.Context, cl *storage.Client) (*cli.Menu, error) {
	users := mongodb.NewSocialUserRepo(cl)
	if err := users.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	return cli.SocialMenu(service.NewSocial(users, mongodb.NewStatusRepo(cl))), nil
}

func reservationsMenu(ctx context.Context, cl *storage.Client) (*cli.Menu, error) {
	reservations := mongodb.NewReservationRepo(cl)
	if err := reservations.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	svc := service.NewReservations(mongodb.NewTableRepo(cl), reservations)
	return cli.ReservationsMenu(svc), nil
}

func studentsMenu(_ context.Context, cl *storage.Client) (*cli.Menu, error) {
	svc := service.NewStudents(mongodb.NewStudentRepo(cl), mongodb.NewGradeRepo(cl))
	return cli.StudentsMenu(svc), nil
}

func tasksMenu(_ context.Context, cl *storage.Client) (*cli.Menu, error) {
	return cli.TasksMenu(service.NewTasks(mongodb.NewTaskRepo(cl))), nil
}

package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kenji007321/MyBlog/config"
	"github.com/Kenji007321/MyBlog/middlewares"
	"github.com/Kenji007321/MyBlog/store"
	"github.com/Kenji007321/MyBlog/utils"
)

// Index lists every post in publish order.
func Index(c *gin.Context) {
	posts, err := store.ListPosts(config.DB)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	render(c, http.StatusOK, "index.html", gin.H{"Posts": posts})
}

func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return uint(id), true
}

// ShowPost renders a post with its comments.
func ShowPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	post, err := store.GetPost(config.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	render(c, http.StatusOK, "post.html", gin.H{"Post": post})
}

// AddComment attaches the caller's comment to a post. Only authenticated
// users may comment.
func AddComment(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	identity := middlewares.Identity(c)
	if !identity.Authenticated {
		utils.SetFlash(c, "You need to login or register to comment.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	text := c.PostForm("text")
	if text == "" {
		c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", id))
		return
	}

	if _, err := store.AddComment(config.DB, id, identity.User.ID, text); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", id))
}

// ShowNewPost renders the post creation form.
func ShowNewPost(c *gin.Context) {
	render(c, http.StatusOK, "make-post.html", gin.H{"IsEdit": false})
}

// NewPost creates a post owned by the admin performing the request.
func NewPost(c *gin.Context) {
	fields, ok := postFields(c)
	if !ok {
		return
	}

	identity := middlewares.Identity(c)
	if _, err := store.CreatePost(config.DB, identity.User.ID, fields); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// ShowEditPost renders the edit form pre-filled with the post's fields.
func ShowEditPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	post, err := store.GetPost(config.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	render(c, http.StatusOK, "make-post.html", gin.H{"IsEdit": true, "Post": post})
}

// EditPost saves changes to a post. Authorship moves to the editing admin;
// the publish date is kept.
func EditPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	fields, ok := postFields(c)
	if !ok {
		return
	}

	identity := middlewares.Identity(c)
	if _, err := store.UpdatePost(config.DB, id, identity.User.ID, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", id))
}

// DeletePost removes a post and its comments.
func DeletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	if err := store.DeletePost(config.DB, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func postFields(c *gin.Context) (store.PostFields, bool) {
	fields := store.PostFields{
		Title:    c.PostForm("title"),
		Subtitle: c.PostForm("subtitle"),
		Body:     c.PostForm("body"),
		ImgURL:   c.PostForm("img_url"),
	}
	if fields.Title == "" || fields.Body == "" {
		render(c, http.StatusBadRequest, "make-post.html", gin.H{"Error": "Title and body are required"})
		return fields, false
	}
	return fields, true
}
